package eapi

import "github.com/netdut-project/netdut/pkg/dialect"

// EnableCommands returns the native config block that turns on the HTTP
// command API for a device speaking d. The blocks are already in the
// device's own dialect; run them untranslated over an SSH session before
// the first eAPI connection.
func EnableCommands(d dialect.Dialect) []string {
	if d == dialect.MOS {
		return []string{
			"configure",
			"management http",
			"no protocol secure",
			"management api",
			"no shutdown",
			"end",
		}
	}
	return []string{
		"configure",
		"management api http-commands",
		"no shutdown",
		"validate-output",
		"management http-server",
		"protocol http",
		"end",
	}
}

// DisableCommands returns the native config block that shuts the HTTP
// command API back down, for fixture teardown.
func DisableCommands(d dialect.Dialect) []string {
	if d == dialect.MOS {
		return []string{
			"configure",
			"management api",
			"shutdown",
			"management http",
			"default protocol",
			"end",
		}
	}
	return []string{
		"configure",
		"management http-server",
		"no protocol http",
		"management api http-commands",
		"shutdown",
		"no validate-output",
		"end",
	}
}

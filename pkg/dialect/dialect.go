// Package dialect implements command and response translation between
// device CLI dialects. Test authors write commands in a single canonical
// dialect; a Translator rewrites them into the dialect the connected device
// actually speaks, and renames the keys of structured replies back into the
// canonical casing convention.
package dialect

// Dialect names a device's command/response convention. Exactly one dialect
// is active per device session.
type Dialect string

const (
	// EOS is the canonical dialect: commands are authored and results are
	// read in EOS-flavored syntax and snake_case result keys.
	EOS Dialect = "eos"

	// MOS is the Metamako-flavored dialect spoken by 7130-series devices.
	MOS Dialect = "mos"
)

// Canonical is the dialect in which test authors write commands and read
// results, regardless of the device's own dialect.
const Canonical = EOS

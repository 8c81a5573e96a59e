package util

import "strings"

// SplitCommands splits a newline-separated command block into trimmed,
// non-empty lines. Test authors write multi-line CLI blocks as indented
// string literals; the indentation and blank lines are not significant.
func SplitCommands(block string) []string {
	lines := strings.Split(block, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

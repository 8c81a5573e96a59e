package dialect

import (
	"regexp"

	"github.com/netdut-project/netdut/pkg/util"
)

// Rule is a single (pattern, replacement) translation rule. Pattern is a
// regular expression; Replace may reference capture groups with $1, $2, ...
// (or ${name} for named groups).
type Rule struct {
	Pattern string
	Replace string
}

type compiledRule struct {
	re      *regexp.Regexp
	replace string
}

// RuleTable is an ordered, immutable set of compiled translation rules for
// one non-canonical dialect. Rules are tried in order and the first match
// wins; order in the source slice is therefore significant.
type RuleTable struct {
	rules []compiledRule
}

// NewRuleTable compiles rules into a RuleTable. A malformed pattern fails
// here, at construction time, with a ConfigError naming the pattern.
func NewRuleTable(rules []Rule) (*RuleTable, error) {
	t := &RuleTable{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, util.NewConfigError(util.ErrBadPattern, r.Pattern, err.Error())
		}
		t.rules = append(t.rules, compiledRule{re: re, replace: r.Replace})
	}
	return t, nil
}

// Len returns the number of rules in the table.
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// Apply rewrites one command line. A rule matches only when its pattern
// matches starting at the beginning of the line (prefix anchoring); the
// replacement is expanded with the captured groups and becomes the whole
// output line. If no rule matches, the line passes through verbatim;
// translation is a compatibility overlay, not a requirement that every
// command be recognized.
func (t *RuleTable) Apply(line string) string {
	for _, r := range t.rules {
		loc := r.re.FindStringSubmatchIndex(line)
		if loc == nil || loc[0] != 0 {
			continue
		}
		return string(r.re.ExpandString(nil, r.replace, line, loc))
	}
	return line
}

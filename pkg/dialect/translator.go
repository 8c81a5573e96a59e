package dialect

import (
	"fmt"

	"github.com/netdut-project/netdut/pkg/util"
)

// Translator rewrites canonical commands into a device's native dialect and
// normalizes the keys of the device's structured replies back into the
// canonical convention. It owns one rule table per non-canonical dialect
// and one key transform, all fixed at construction; a Translator is
// immutable afterwards and safe to share between concurrent sessions.
//
// Extension is by composition, not mutation: build a new Translator with a
// rule slice that layers caller rules before or after the defaults.
type Translator struct {
	canonical Dialect
	tables    map[Dialect]*RuleTable
	keyFn     KeyTransform
}

// NewTranslator compiles one rule table per non-canonical dialect and
// returns an immutable Translator. A malformed pattern in any table fails
// here with a ConfigError. keyFn may be nil, in which case response keys
// pass through unchanged.
func NewTranslator(canonical Dialect, tables map[Dialect][]Rule, keyFn KeyTransform) (*Translator, error) {
	t := &Translator{
		canonical: canonical,
		tables:    make(map[Dialect]*RuleTable, len(tables)),
		keyFn:     keyFn,
	}
	for d, rules := range tables {
		table, err := NewRuleTable(rules)
		if err != nil {
			return nil, fmt.Errorf("dialect %q: %w", d, err)
		}
		t.tables[d] = table
	}
	return t, nil
}

// Canonical returns the translator's canonical dialect.
func (t *Translator) Canonical() Dialect {
	return t.canonical
}

// TranslateCommands rewrites a command sequence, line by line and in order,
// using the rule table registered for d. The canonical dialect is the
// identity: the input is returned as-is without a table lookup. An
// unregistered dialect is a configuration error, not a silent pass-through,
// because running untranslated commands against an incompatible device is a
// correctness hazard.
func (t *Translator) TranslateCommands(d Dialect, cmds []string) ([]string, error) {
	if d == t.canonical {
		return cmds, nil
	}
	table, ok := t.tables[d]
	if !ok {
		return nil, util.NewConfigError(util.ErrUnknownDialect, string(d), "no rule table registered")
	}

	out := make([]string, len(cmds))
	changed := false
	for i, cmd := range cmds {
		out[i] = table.Apply(cmd)
		if out[i] != cmd {
			changed = true
		}
	}
	if changed {
		util.WithDialect(string(d)).Debugf("translated commands: before=%q after=%q", cmds, out)
	}
	return out, nil
}

// TranslateResponse normalizes the keys of a structured reply. Mappings are
// walked recursively and each key is renamed through the key transform;
// sequence elements are recursed into in place; scalars pass through
// unchanged. Only keys change; value types, list ordering, and nesting
// depth are preserved. The canonical dialect is the identity.
//
// Two distinct keys normalizing to the same name within one mapping is a
// configuration/data hazard; it fails with a ConfigError naming both keys
// rather than silently dropping device data.
func (t *Translator) TranslateResponse(d Dialect, resp interface{}) (interface{}, error) {
	if d == t.canonical || t.keyFn == nil {
		return resp, nil
	}
	if _, ok := t.tables[d]; !ok {
		return nil, util.NewConfigError(util.ErrUnknownDialect, string(d), "no rule table registered")
	}
	return t.walk(resp)
}

func (t *Translator) walk(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		seen := make(map[string]string, len(val))
		for k, child := range val {
			nk := t.keyFn(k)
			if prev, dup := seen[nk]; dup {
				return nil, util.NewConfigError(util.ErrKeyCollision, nk,
					fmt.Sprintf("keys %q and %q both normalize to it", prev, k))
			}
			seen[nk] = k
			walked, err := t.walk(child)
			if err != nil {
				return nil, err
			}
			out[nk] = walked
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			walked, err := t.walk(child)
			if err != nil {
				return nil, err
			}
			out[i] = walked
		}
		return out, nil
	default:
		return v, nil
	}
}

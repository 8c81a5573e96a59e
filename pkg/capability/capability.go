// Package capability evaluates regex predicates over device identifier
// strings (model/SKU). Tests use these predicates to decide whether they
// should run on the connected device: skip-if-matches for known-bad device
// types, run-only-if-matches for feature-gated tests.
package capability

import (
	"fmt"
	"regexp"
)

// Predicate reports whether a device identifier satisfies a capability
// requirement.
type Predicate func(identifier string) bool

// Compile compiles pattern into a Predicate. The predicate uses search
// semantics: it holds when the pattern matches anywhere in the identifier,
// so "DCS-7130.*" acts as a prefix match against "DCS-7130-48L". An invalid
// pattern fails here, at registration time, not at test execution time.
func Compile(pattern string) (Predicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("capability pattern %q: %w", pattern, err)
	}
	return re.MatchString, nil
}

// MustCompile is like Compile but panics on an invalid pattern. Intended
// for package-level predicate variables.
func MustCompile(pattern string) Predicate {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches reports whether pattern matches identifier (search semantics).
// It returns an error for an invalid pattern.
func Matches(identifier, pattern string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p(identifier), nil
}

// All composes predicates with logical AND. With no arguments it always
// holds.
func All(preds ...Predicate) Predicate {
	return func(identifier string) bool {
		for _, p := range preds {
			if !p(identifier) {
				return false
			}
		}
		return true
	}
}

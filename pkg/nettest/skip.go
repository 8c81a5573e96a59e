// Package nettest bridges the capability predicates to the Go test runner.
// The core predicates are pure functions; this package owns the translation
// of their boolean results into skip actions, so tests gate themselves on
// the connected device without touching regexp machinery:
//
//	func TestTapRecirculation(t *testing.T) {
//	    nettest.RunOnlyOnDeviceType(t, info.SKU, "DCS-7130.*")
//	    ...
//	}
package nettest

import (
	"testing"
	"time"

	"github.com/netdut-project/netdut/pkg/capability"
	"github.com/netdut-project/netdut/pkg/dialect"
	"github.com/netdut-project/netdut/pkg/wait"
)

// SkipIfDeviceType skips the test when the device SKU matches pattern.
// An invalid pattern fails the test immediately; a broken gate must not
// silently run the test everywhere.
func SkipIfDeviceType(t testing.TB, sku, pattern string) {
	t.Helper()
	match, err := capability.Matches(sku, pattern)
	if err != nil {
		t.Fatalf("skip pattern: %v", err)
	}
	if match {
		t.Skipf("skipped on this SKU: %s", sku)
	}
}

// RunOnlyOnDeviceType skips the test unless the device SKU matches pattern.
func RunOnlyOnDeviceType(t testing.TB, sku, pattern string) {
	t.Helper()
	match, err := capability.Matches(sku, pattern)
	if err != nil {
		t.Fatalf("only pattern: %v", err)
	}
	if !match {
		t.Skipf("skipped on this SKU: %s (only runs on %s)", sku, pattern)
	}
}

// RequireDialect skips the test unless the session dialect is one of the
// allowed dialects. Stacked gates compose with logical AND: each call must
// pass for the test to run.
func RequireDialect(t testing.TB, d dialect.Dialect, allowed ...dialect.Dialect) {
	t.Helper()
	for _, a := range allowed {
		if d == a {
			return
		}
	}
	t.Skipf("cannot run on platform %s", d)
}

// WaitFor polls cond until it holds and fails the test with msg when the
// deadline passes or the condition errors. It keeps the returning-not-
// failing wait.For composable while covering the common assert-on-success
// case.
func WaitFor(t testing.TB, cond wait.Condition, timeout time.Duration, msg string) {
	t.Helper()
	ok, err := wait.For(cond, timeout, 0)
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
	if !ok {
		t.Fatalf("%s: not true after %v", msg, timeout)
	}
}

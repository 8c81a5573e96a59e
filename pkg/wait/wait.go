// Package wait provides bounded-time polling for asynchronous device state.
// Configuration applied to a device often becomes observable only after the
// device has converged; tests and fixture teardown use wait.For to block
// until a condition holds or a deadline passes.
package wait

import "time"

// DefaultInterval is the poll interval used when the caller passes a
// non-positive interval.
const DefaultInterval = 100 * time.Millisecond

// Condition is a check evaluated repeatedly by For. A non-nil error aborts
// the wait immediately: a broken check should surface, not be retried
// indefinitely.
type Condition func() (bool, error)

// For evaluates cond until it returns true or timeout elapses, sleeping
// interval between attempts. It returns (true, nil) as soon as cond holds
// and (false, nil) once the deadline passes without success; reaching the
// deadline is a valid outcome, not an error, so callers compose it with
// their own failure messages:
//
//	ok, err := wait.For(appRunning, 30*time.Second, 0)
//	if err != nil { ... }
//	if !ok {
//	    t.Fatal("app did not start within 30s")
//	}
//
// cond is evaluated at least once even when timeout is zero or negative.
// Cancellation mid-interval is the caller's business: wrap the condition if
// cooperative cancellation is needed.
func For(cond Condition, timeout, interval time.Duration) (bool, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	deadline := time.Now().Add(timeout)

	for {
		ok, err := cond()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
		time.Sleep(interval)
	}
}

// True adapts a plain boolean check into a Condition.
func True(f func() bool) Condition {
	return func() (bool, error) {
		return f(), nil
	}
}

package wait

import (
	"errors"
	"testing"
	"time"
)

func TestForImmediateSuccess(t *testing.T) {
	calls := 0
	ok, err := For(func() (bool, error) {
		calls++
		return true, nil
	}, 0, 10*time.Millisecond)

	if err != nil {
		t.Fatalf("For: %v", err)
	}
	if !ok {
		t.Error("For should report success")
	}
	if calls != 1 {
		t.Errorf("condition invoked %d times, want exactly 1", calls)
	}
}

func TestForZeroTimeoutStillChecksOnce(t *testing.T) {
	calls := 0
	ok, err := For(func() (bool, error) {
		calls++
		return false, nil
	}, 0, 10*time.Millisecond)

	if err != nil {
		t.Fatalf("For: %v", err)
	}
	if ok {
		t.Error("For should report failure")
	}
	if calls != 1 {
		t.Errorf("condition invoked %d times, want exactly 1", calls)
	}
}

func TestForTimeout(t *testing.T) {
	calls := 0
	start := time.Now()
	ok, err := For(func() (bool, error) {
		calls++
		return false, nil
	}, 50*time.Millisecond, 10*time.Millisecond)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("For: %v", err)
	}
	if ok {
		t.Error("For should report failure after the deadline")
	}
	if calls < 2 {
		t.Errorf("condition invoked %d times, want more than once", calls)
	}
	if elapsed < 50*time.Millisecond {
		t.Errorf("returned after %v, before the 50ms deadline", elapsed)
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("returned after %v, far past the deadline", elapsed)
	}
}

func TestForEventualSuccess(t *testing.T) {
	calls := 0
	ok, err := For(func() (bool, error) {
		calls++
		return calls >= 3, nil
	}, time.Second, 5*time.Millisecond)

	if err != nil {
		t.Fatalf("For: %v", err)
	}
	if !ok {
		t.Error("For should report success")
	}
	if calls != 3 {
		t.Errorf("condition invoked %d times, want 3", calls)
	}
}

func TestForConditionError(t *testing.T) {
	boom := errors.New("check broke")
	calls := 0
	ok, err := For(func() (bool, error) {
		calls++
		return false, boom
	}, time.Second, 5*time.Millisecond)

	if !errors.Is(err, boom) {
		t.Fatalf("For should propagate the condition error, got %v", err)
	}
	if ok {
		t.Error("For should not report success on error")
	}
	if calls != 1 {
		t.Errorf("condition invoked %d times after error, want 1 (no retry)", calls)
	}
}

func TestTrue(t *testing.T) {
	ok, err := For(True(func() bool { return true }), 0, 0)
	if err != nil || !ok {
		t.Errorf("For(True(...)) = (%v, %v), want (true, nil)", ok, err)
	}
}

package pool

import (
	"errors"
	"testing"
	"time"
)

func TestFutureClaimWinsOverLateCancel(t *testing.T) {
	fut := newFuture(func(n int) (int64, error) { return int64(n), nil }, 1)

	if !fut.claim() {
		t.Fatal("claim on a pending future should succeed")
	}
	if fut.Cancel() {
		t.Fatal("cancel after claim should fail")
	}
	if got := fut.State(); got != StateRunning {
		t.Fatalf("state = %v, want running", got)
	}

	fut.publish(42, nil)
	v, err := fut.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != 42 {
		t.Fatalf("Get = %d, want 42", v)
	}
}

func TestFutureCancelWinsOverLateClaim(t *testing.T) {
	fut := newFuture(func(n int) (int64, error) { return int64(n), nil }, 1)

	if !fut.Cancel() {
		t.Fatal("cancel on a pending future should succeed")
	}
	if fut.claim() {
		t.Fatal("claim after cancel should fail")
	}
	if _, err := fut.Get(); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Get err = %v, want ErrCancelled", err)
	}
	if !fut.Done() {
		t.Fatal("cancelled future should be done")
	}
}

func TestFutureTerminalStateIsImmutable(t *testing.T) {
	fut := newFuture(func(n int) (int64, error) { return int64(n), nil }, 1)
	fut.claim()
	fut.publish(0, errors.New("boom"))

	if got := fut.State(); got != StateError {
		t.Fatalf("state = %v, want error", got)
	}

	// Neither a second publish nor a cancel may move a terminal future.
	fut.publish(7, nil)
	if fut.Cancel() {
		t.Fatal("cancel on a terminal future should fail")
	}
	if got := fut.State(); got != StateError {
		t.Fatalf("state = %v, want error after re-publish", got)
	}
}

func TestFutureGetTimeoutLeavesStateUntouched(t *testing.T) {
	fut := newFuture(func(n int) (int64, error) { return int64(n), nil }, 1)

	if _, err := fut.GetTimeout(10 * time.Millisecond); !errors.Is(err, ErrTimeout) {
		t.Fatalf("GetTimeout err = %v, want ErrTimeout", err)
	}
	if got := fut.State(); got != StatePending {
		t.Fatalf("state = %v, want pending after timeout", got)
	}

	fut.claim()
	fut.publish(9, nil)
	v, err := fut.GetTimeout(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("GetTimeout after publish: %v", err)
	}
	if v != 9 {
		t.Fatalf("GetTimeout = %d, want 9", v)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StatePending:   "pending",
		StateRunning:   "running",
		StateCompleted: "completed",
		StateCancelled: "cancelled",
		StateError:     "error",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
	if StateRunning.Terminal() {
		t.Error("running must not be terminal")
	}
	if !StateCancelled.Terminal() {
		t.Error("cancelled must be terminal")
	}
}

package auth

import (
	"sync"
	"testing"
)

func TestMemoryThrottle_BlocksAtThreshold(t *testing.T) {
	t.Parallel()

	th := NewMemoryThrottle(6)
	email := "a@x.com"

	for i := 0; i < 5; i++ {
		th.RecordFailure(email)
		if th.IsBlocked(email) {
			t.Fatalf("blocked after %d failures, threshold is 6", i+1)
		}
	}
	th.RecordFailure(email)
	if !th.IsBlocked(email) {
		t.Fatalf("not blocked after 6 failures")
	}
	// Stays blocked; there is no time decay.
	if !th.IsBlocked(email) {
		t.Fatalf("block did not persist")
	}
}

func TestMemoryThrottle_SuccessResets(t *testing.T) {
	t.Parallel()

	th := NewMemoryThrottle(6)
	email := "a@x.com"

	for i := 0; i < 6; i++ {
		th.RecordFailure(email)
	}
	th.RecordSuccess(email)
	if th.IsBlocked(email) {
		t.Fatalf("still blocked after success")
	}
	// Counting restarts from 1, not 7.
	th.RecordFailure(email)
	if th.IsBlocked(email) {
		t.Fatalf("blocked after a single post-reset failure")
	}
}

func TestMemoryThrottle_PerIdentity(t *testing.T) {
	t.Parallel()

	th := NewMemoryThrottle(6)
	for i := 0; i < 6; i++ {
		th.RecordFailure("a@x.com")
	}
	if th.IsBlocked("b@x.com") {
		t.Fatalf("unrelated identity blocked")
	}
}

func TestMemoryThrottle_ConcurrentFailures(t *testing.T) {
	t.Parallel()

	th := NewMemoryThrottle(6)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			th.RecordFailure("a@x.com")
		}()
	}
	wg.Wait()
	if !th.IsBlocked("a@x.com") {
		t.Fatalf("not blocked after 100 concurrent failures")
	}
}

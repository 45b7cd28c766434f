package auth

import "sync"

// Throttle counts consecutive failed login attempts per email and blocks
// further attempts once a threshold is reached.  Implementations must be
// safe for concurrent use: login failures for the same email can race.
// The counter has no time decay; only a successful authentication (a
// correct-password login or a redeemed password reset) clears it.
type Throttle interface {
	// RecordFailure increments the counter for email, creating it at 1.
	RecordFailure(email string)
	// RecordSuccess removes any counter for email.
	RecordSuccess(email string)
	// IsBlocked reports whether email has reached the failure threshold.
	IsBlocked(email string) bool
}

// MemoryThrottle is a process-local Throttle backed by a mutex-guarded
// map.  Counters are not shared across instances and are lost on
// restart; deployments running more than one replica should use
// RedisThrottle instead.
type MemoryThrottle struct {
	mu       sync.Mutex
	attempts map[string]int
	max      int
}

// NewMemoryThrottle returns a MemoryThrottle blocking after max
// consecutive failures.
func NewMemoryThrottle(max int) *MemoryThrottle {
	return &MemoryThrottle{attempts: make(map[string]int), max: max}
}

func (t *MemoryThrottle) RecordFailure(email string) {
	t.mu.Lock()
	t.attempts[email]++
	t.mu.Unlock()
}

func (t *MemoryThrottle) RecordSuccess(email string) {
	t.mu.Lock()
	delete(t.attempts, email)
	t.mu.Unlock()
}

func (t *MemoryThrottle) IsBlocked(email string) bool {
	t.mu.Lock()
	n := t.attempts[email]
	t.mu.Unlock()
	return n >= t.max
}

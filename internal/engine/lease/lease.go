// Package lease implements a self-expiring, non-blocking
// mutual-exclusion grant. A contender that fails to acquire does not
// wait; it is expected to carry on with the currently published data.
package lease

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Lease is a binary lock with an expiry timestamp. A holder that never
// releases is treated as abandoned once the expiry passes, so a crashed
// caller cannot wedge the guarded operation forever.
//
// Acquire hands out an owner token; Release and Renew only act when
// presented with the token of the current holder.
type Lease struct {
	duration time.Duration
	now      func() time.Time

	mu     sync.Mutex
	held   bool
	token  string
	expiry time.Time
}

// New creates a Lease with the given duration.
func New(duration time.Duration) *Lease {
	return &Lease{duration: duration, now: time.Now}
}

// Acquire attempts a non-blocking acquire. An expired holder is
// force-cleared first. On success it returns the owner token and sets
// the expiry to now + duration; otherwise it returns ("", false)
// immediately.
func (l *Lease) Acquire() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.held && now.After(l.expiry) {
		l.held = false
		l.token = ""
	}

	if l.held {
		return "", false
	}

	l.held = true
	l.token = uuid.NewString()
	l.expiry = now.Add(l.duration)
	return l.token, true
}

// Release frees the lease if token matches the current holder. It
// returns true only when it actually released a held lease.
func (l *Lease) Release(token string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.held || token == "" || token != l.token {
		return false
	}

	l.held = false
	l.token = ""
	l.expiry = time.Time{}
	return true
}

// Renew pushes the expiry forward by the lease duration from now. It
// returns false when the lease is free or token does not match.
func (l *Lease) Renew(token string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.held || token == "" || token != l.token {
		return false
	}

	l.expiry = l.now().Add(l.duration)
	return true
}

// IsLocked reports whether the lease is held and not yet expired. An
// expired-but-unreclaimed holder reports false.
func (l *Lease) IsLocked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.held && !l.now().After(l.expiry)
}

// Do runs fn while holding the lease and releases it on every path.
// When the lease is unavailable it returns (false, nil) without
// running fn.
func (l *Lease) Do(fn func() error) (bool, error) {
	token, ok := l.Acquire()
	if !ok {
		return false, nil
	}
	defer l.Release(token)
	return true, fn()
}

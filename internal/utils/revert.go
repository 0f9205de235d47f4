// internal/utils/revert.go
package utils

import (
	"sync"
	"time"
)

// Revert is a one-shot cancellable timer for transient UI flags that must
// auto-clear after a short delay (the "Added!" flash, the heart pulse).
// Unlike a bare time.AfterFunc, a Revert is owned: the owner cancels it on
// teardown so the callback never fires against a discarded session.
type Revert struct {
	mu    sync.Mutex
	timer *time.Timer
	done  bool
}

// NewRevert schedules fn after d and returns a handle to cancel it.
func NewRevert(d time.Duration, fn func()) *Revert {
	r := &Revert{}
	r.timer = time.AfterFunc(d, func() {
		r.mu.Lock()
		if r.done {
			r.mu.Unlock()
			return
		}
		r.done = true
		r.mu.Unlock()
		fn()
	})
	return r
}

// Cancel stops the revert if it has not fired yet. Safe to call more than
// once and after firing.
func (r *Revert) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	r.done = true
	r.timer.Stop()
}

package main

import "time"

// levelTimer tracks the single deadline for the level in progress. A
// fresh timer is created at the start of every level and discarded with
// it, whether it expired or was beaten.
type levelTimer struct {
	deadline time.Time
}

// newLevelTimer starts a timer expiring after d.
func newLevelTimer(d time.Duration) *levelTimer {
	return &levelTimer{deadline: time.Now().Add(d)}
}

// remaining returns the time left before the deadline, clamped to zero
// once expired. Repeated calls never report more time than before.
func (t *levelTimer) remaining() time.Duration {
	left := time.Until(t.deadline)
	if left < 0 {
		return 0
	}
	return left
}

// expired reports whether the deadline has passed.
func (t *levelTimer) expired() bool {
	return t.remaining() == 0
}

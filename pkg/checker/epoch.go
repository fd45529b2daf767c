package checker

import "sync/atomic"

// EpochCounter is the monotonically increasing "current check epoch"
// (spec.md §5): bumped whenever a new validation for any document
// arrives, so an in-flight walk that yielded mid-document can notice it
// has been superseded and abort instead of racing a newer validation
// to completion.
type EpochCounter struct {
	value atomic.Int64
}

// Bump advances the epoch and returns the new value.
func (c *EpochCounter) Bump() int64 {
	return c.value.Add(1)
}

// Current returns the current epoch without advancing it.
func (c *EpochCounter) Current() int64 {
	return c.value.Load()
}

// StillCurrent reports whether token is still the latest epoch.
func (c *EpochCounter) StillCurrent(token int64) bool {
	return c.value.Load() == token
}

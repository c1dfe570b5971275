package playback

import "time"

// Clock schedules one-shot callbacks. The returned stop function cancels
// the callback if it has not started yet and reports whether it did.
type Clock interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// RealClock schedules on the runtime timer.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

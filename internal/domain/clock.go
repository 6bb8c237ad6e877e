package domain

import "github.com/jonboulle/clockwork"

// eventClock stamps LookupEvent.CompletedAt.
var eventClock = clockwork.NewRealClock()

// SetClock replaces the clock used to stamp lookup events and returns a func
// that restores the previous one. A nil clock selects real time.
func SetClock(c clockwork.Clock) (restore func()) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	prev := eventClock
	eventClock = c
	return func() { eventClock = prev }
}

package port

import "time"

// Timer is a handle on a pending callback scheduled by a Clock.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Clock abstracts wall time so timer-driven behavior can be tested
// deterministically.
type Clock interface {
	Now() time.Time

	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

package interpreter

import "time"

// Clock provides the monotonic time source of the tick driver.
type Clock interface {
	Now() time.Time
}

// Sleeper is implemented by clocks that can block for a duration. The tick
// driver throttles instruction execution only if its clock is a Sleeper.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SystemClock is the wall clock of the host, it sleeps using time.Sleep.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the current goroutine for at least the duration d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// SpinClock is a wall clock without a blocking sleep. A driver using it runs
// instructions back to back until the timer cycle budget is used up.
type SpinClock struct{}

// Now returns the current time.
func (SpinClock) Now() time.Time {
	return time.Now()
}

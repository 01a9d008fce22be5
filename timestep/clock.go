package timestep

import "time"

// Clock provides the current time. Implementations must return
// times carrying a monotonic reading, so that durations between two
// readings are unaffected by wall clock adjustments.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock using time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

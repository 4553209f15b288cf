package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Stopwatch measures wall time between a start mark and now.
type Stopwatch struct {
	clock   Clock
	started time.Time
}

func StartStopwatch(c Clock) Stopwatch {
	return Stopwatch{clock: c, started: c.Now()}
}

func (s Stopwatch) Elapsed() time.Duration {
	d := s.clock.Now().Sub(s.started)
	if d < 0 {
		return 0
	}
	return d
}

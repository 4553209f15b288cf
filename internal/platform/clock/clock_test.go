package clock_test

import (
	"testing"
	"time"

	"sciquiz/internal/platform/clock"
)

type stepClock struct {
	values []time.Time
	idx    int
}

func (s *stepClock) Now() time.Time {
	if s.idx >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.idx]
	s.idx++
	return v
}

func TestStopwatchElapsed(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := &stepClock{values: []time.Time{base, base.Add(12 * time.Second)}}
	sw := clock.StartStopwatch(clk)
	if got := sw.Elapsed(); got != 12*time.Second {
		t.Fatalf("expected 12s, got %s", got)
	}
}

func TestStopwatchNeverNegative(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := &stepClock{values: []time.Time{base, base.Add(-time.Second)}}
	if got := clock.StartStopwatch(clk).Elapsed(); got != 0 {
		t.Fatalf("expected zero for clock going backwards, got %s", got)
	}
}

package domain

// Countdown is a per-question timer in whole seconds. It holds no goroutine:
// the host advances it by calling Tick once per second.
type Countdown struct {
	remaining int
	active    bool
}

func NewCountdown(limit int) Countdown {
	if limit < 0 {
		limit = 0
	}
	return Countdown{remaining: limit, active: limit > 0}
}

// Tick advances one second. expired is true exactly once, on the tick that
// reaches zero; ticks on a cancelled or expired countdown change nothing.
func (c *Countdown) Tick() (remaining int, expired bool) {
	if !c.active {
		return c.remaining, false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.active = false
		return 0, true
	}
	return c.remaining, false
}

func (c *Countdown) Cancel() {
	c.active = false
}

func (c Countdown) Remaining() int { return c.remaining }

func (c Countdown) Active() bool { return c.active }

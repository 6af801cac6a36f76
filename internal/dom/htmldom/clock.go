package htmldom

import (
	"time"

	"github.com/Zachkp/portfolio/internal/dom"
)

// Clock is a manual dom.Scheduler. Nothing fires until Advance is called.
type Clock struct {
	now    time.Duration
	seq    int
	timers []*clockTimer
}

var _ dom.Scheduler = (*Clock)(nil)

type clockTimer struct {
	clock *Clock
	at    time.Duration
	seq   int
	f     func()
}

// NewClock returns a clock at time zero.
func NewClock() *Clock { return &Clock{} }

// Now is the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration { return c.now }

// Pending is the number of callbacks not yet fired or stopped.
func (c *Clock) Pending() int { return len(c.timers) }

func (c *Clock) AfterFunc(d time.Duration, f func()) dom.Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &clockTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Callbacks scheduled by a fired callback run too if they fall inside the
// window.
func (c *Clock) Advance(d time.Duration) {
	end := c.now + d
	for {
		next := c.earliest()
		if next == nil || next.at > end {
			break
		}
		c.remove(next)
		c.now = next.at
		next.f()
	}
	c.now = end
}

func (c *Clock) earliest() *clockTimer {
	var best *clockTimer
	for _, t := range c.timers {
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *Clock) remove(t *clockTimer) bool {
	for i, p := range c.timers {
		if p == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

func (t *clockTimer) Stop() bool { return t.clock.remove(t) }

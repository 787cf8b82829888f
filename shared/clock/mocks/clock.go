package mocks

import (
	"countdown/shared/clock"
	"sync"
	"time"
)

// Clock is a manually driven clock. Advance fires due timers synchronously,
// in deadline order, on the caller's goroutine.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*timer
}

type timer struct {
	clock    *Clock
	interval time.Duration
	next     time.Time
	fn       func()
	stopped  bool
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now implements clock.Clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Every implements clock.Clock.
func (c *Clock) Every(interval time.Duration, fn func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &timer{
		clock:    c,
		interval: interval,
		next:     c.now.Add(interval),
		fn:       fn,
	}
	c.timers = append(c.timers, t)

	return t
}

// Set moves the clock without firing any timer.
func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

// Advance moves the clock forward by d, firing every timer deadline that
// falls inside the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		due := c.nextDue(target)
		if due == nil {
			break
		}

		c.now = due.next
		due.next = due.next.Add(due.interval)

		c.mu.Unlock()
		due.fn()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// ActiveTimers reports how many timers have not been stopped.
func (c *Clock) ActiveTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := 0

	for _, t := range c.timers {
		if !t.stopped {
			active++
		}
	}

	return active
}

func (c *Clock) nextDue(target time.Time) *timer {
	var due *timer

	for _, t := range c.timers {
		if t.stopped || t.next.After(target) {
			continue
		}

		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}

	return due
}

// Stop implements clock.Timer.
func (t *timer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	t.stopped = true
}

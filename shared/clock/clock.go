// Package clock abstracts wall-clock reads and the repeating, cancelable
// timer that drives the countdown.
package clock

import (
	"sync"
	"time"
)

// Timer is an owned repeating timer. Stop is idempotent and may be called
// from inside the timer's own callback.
type Timer interface {
	Stop()
}

// Clock provides the current time and a "repeat every interval" primitive.
// Callbacks of a single Timer never overlap.
type Clock interface {
	Now() time.Time
	Every(interval time.Duration, fn func()) Timer
}

type systemClock struct{}

func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Every(interval time.Duration, fn func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go t.run(fn)

	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) run(fn func()) {
	defer t.ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// Stop may race with a pending tick.
			select {
			case <-t.done:
				return
			default:
			}

			fn()
		}
	}
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		close(t.done)
	})
}

// Package engine drives a single countdown run from a repeating timer.
package engine

import (
	"countdown/internal/domains/countdown/model"
	"countdown/shared/clock"
	"countdown/shared/constant"
	"countdown/shared/timezone"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrInvalidTarget = errors.New("invalid countdown target")

// Normalizer supplies "now" in the countdown's zone.
type Normalizer interface {
	CurrentInstantInZone(zoneID string) (time.Time, error)
}

// Engine owns one CountdownState and at most one running timer.
//
// Ticks of one run never overlap. The mutex only serializes ticks against
// State readers and Reconfigure/Stop callers on other goroutines. Each run
// has a generation; a tick from an older generation is ignored.
type Engine struct {
	mu         sync.Mutex
	normalizer Normalizer
	clock      clock.Clock
	onComplete func()
	timer      clock.Timer
	generation uint64
	state      model.State
}

// New returns an idle engine. onComplete may be nil.
func New(normalizer Normalizer, clk clock.Clock, onComplete func()) *Engine {
	return &Engine{
		normalizer: normalizer,
		clock:      clk,
		onComplete: onComplete,
	}
}

// Start begins a new run toward target, replacing any run in progress.
// Remaining time is computed before Start returns.
func (e *Engine) Start(target model.Target) error {
	return e.begin(target, false)
}

// Reconfigure points the engine at a new target. Reconfiguring to the target
// of the active run is a no-op.
func (e *Engine) Reconfigure(target model.Target) error {
	return e.begin(target, true)
}

// Stop cancels the timer. No state changes or callbacks happen afterwards
// until the next Start.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelLocked()
	e.generation++

	if e.state.Status == model.StatusRunning {
		e.state.Status = model.StatusStopped
	}

	log.Debug().Str("instance_id", e.state.InstanceID).Msg("countdown engine stopped")
}

// State returns a copy of the current state.
func (e *Engine) State() model.State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

func (e *Engine) begin(target model.Target, idempotent bool) error {
	if !target.Instant.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidTarget, target.Instant)
	}

	now, err := e.normalizer.CurrentInstantInZone(target.Zone)
	if err != nil {
		return fmt.Errorf("failed to read current time in %q: %w", target.Zone, err)
	}

	e.mu.Lock()

	if idempotent && e.activeLocked() && e.state.Target == target {
		e.mu.Unlock()

		return nil
	}

	e.cancelLocked()
	e.generation++
	generation := e.generation

	e.state = model.State{
		Status:     model.StatusRunning,
		Target:     target,
		InstanceID: uuid.NewString(),
	}

	completed := e.applyLocked(now)
	if !completed {
		e.timer = e.clock.Every(constant.TickInterval, func() {
			e.tick(generation)
		})
	}

	log.Debug().
		Str("instance_id", e.state.InstanceID).
		Str("target", target.Instant.String()).
		Str("zone", target.Zone).
		Msg("countdown engine started")

	e.mu.Unlock()

	if completed {
		e.complete()
	}

	return nil
}

func (e *Engine) tick(generation uint64) {
	e.mu.Lock()

	if generation != e.generation || e.state.Status != model.StatusRunning {
		e.mu.Unlock()

		return
	}

	now, err := e.normalizer.CurrentInstantInZone(e.state.Target.Zone)
	if err != nil {
		e.mu.Unlock()
		log.Error().Err(err).Str("zone", e.state.Target.Zone).Msg("failed to read current time, skipping tick")

		return
	}

	completed := e.applyLocked(now)

	e.mu.Unlock()

	if completed {
		e.complete()
	}
}

// applyLocked recomputes the remaining time and reports whether the run just
// completed.
func (e *Engine) applyLocked(now time.Time) bool {
	delta := e.state.Target.Instant.Sub(timezone.InstantOf(now))
	e.state.UpdatedAt = now

	if delta > 0 {
		e.state.Remaining = model.Decompose(delta)

		return false
	}

	e.state.Remaining = model.RemainingTime{}
	e.state.Completed = true
	e.state.Status = model.StatusCompleted
	e.cancelLocked()

	return true
}

func (e *Engine) complete() {
	log.Debug().Msg("countdown engine reached zero")

	if e.onComplete != nil {
		e.onComplete()
	}
}

func (e *Engine) activeLocked() bool {
	return e.state.Status == model.StatusRunning || e.state.Status == model.StatusCompleted
}

func (e *Engine) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

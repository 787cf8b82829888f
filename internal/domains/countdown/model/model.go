package model

import (
	"countdown/shared/constant"
	"countdown/shared/timezone"
	"time"
)

// Status is the lifecycle position of a countdown run.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// RemainingTime is a non-negative duration split into calendar units.
type RemainingTime struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Decompose splits a millisecond delta using fixed 24h/60m/60s units,
// dropping the sub-second remainder. Non-positive deltas decompose to zero.
func Decompose(deltaMillis int64) RemainingTime {
	if deltaMillis <= 0 {
		return RemainingTime{}
	}

	return RemainingTime{
		Days:    deltaMillis / constant.MillisPerDay,
		Hours:   (deltaMillis % constant.MillisPerDay) / constant.MillisPerHour,
		Minutes: (deltaMillis % constant.MillisPerHour) / constant.MillisPerMinute,
		Seconds: (deltaMillis % constant.MillisPerMinute) / constant.MillisPerSecond,
	}
}

// Millis reassembles the decomposed duration.
func (r RemainingTime) Millis() int64 {
	return r.Days*constant.MillisPerDay +
		r.Hours*constant.MillisPerHour +
		r.Minutes*constant.MillisPerMinute +
		r.Seconds*constant.MillisPerSecond
}

func (r RemainingTime) IsZero() bool {
	return r == RemainingTime{}
}

// Target is the instant a countdown runs toward and the zone it is shown in.
type Target struct {
	Instant timezone.Instant
	Zone    string
}

// State is the engine-owned countdown state. InstanceID changes whenever a
// new run starts.
type State struct {
	Remaining  RemainingTime
	Completed  bool
	Status     Status
	Target     Target
	InstanceID string
	UpdatedAt  time.Time
}

package dto

import (
	"countdown/internal/domains/countdown/model"
	"fmt"
)

type ReconfigureRequest struct {
	Date    string `json:"date" validate:"required_without=Instant,excluded_with=Instant,civildate"`
	Time    string `json:"time" validate:"omitempty,datetime=15:04:05"`
	Instant string `json:"instant" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Title   string `json:"title" validate:"omitempty,max=255"`
}

type CountdownResponse struct {
	Title      string              `json:"title"`
	Remaining  model.RemainingTime `json:"remaining"`
	Completed  bool                `json:"completed"`
	Status     string              `json:"status"`
	Timezone   string              `json:"timezone"`
	Target     string              `json:"target"`
	TargetAt   string              `json:"target_at"`
	Now        string              `json:"now"`
	InstanceID string              `json:"instance_id"`
}

func (r *CountdownResponse) FromModel(state model.State, title, target, now string) {
	r.Title = title
	r.Remaining = state.Remaining
	r.Completed = state.Completed
	r.Status = state.Status.String()
	r.Timezone = state.Target.Zone
	r.Target = target
	r.TargetAt = state.Target.Instant.String()
	r.Now = now
	r.InstanceID = state.InstanceID
}

// Units returns the remaining days, hours, minutes and seconds zero-padded
// to two digits.
func (r CountdownResponse) Units() [4]string {
	return [4]string{
		formatNumber(r.Remaining.Days),
		formatNumber(r.Remaining.Hours),
		formatNumber(r.Remaining.Minutes),
		formatNumber(r.Remaining.Seconds),
	}
}

func formatNumber(value int64) string {
	return fmt.Sprintf("%02d", value)
}

package dto_test

import (
	"countdown/internal/domains/countdown/model"
	"countdown/internal/domains/countdown/model/dto"
	"countdown/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownResponse_FromModel(t *testing.T) {
	state := model.State{
		Remaining:  model.RemainingTime{Days: 1, Hours: 2, Minutes: 3, Seconds: 4},
		Status:     model.StatusRunning,
		Target:     model.Target{Instant: timezone.InstantOf(time.Date(2025, time.July, 1, 1, 0, 0, 0, time.UTC)), Zone: "America/Mexico_City"},
		InstanceID: "run-1",
	}

	res := dto.CountdownResponse{}
	res.FromModel(state, "Tiempo para volverte a ver", "lunes, 30 de junio de 2025, 19:00", "lun, 30 jun, 18:00:00")

	assert.Equal(t, "Tiempo para volverte a ver", res.Title)
	assert.Equal(t, state.Remaining, res.Remaining)
	assert.False(t, res.Completed)
	assert.Equal(t, "running", res.Status)
	assert.Equal(t, "America/Mexico_City", res.Timezone)
	assert.Equal(t, "2025-07-01T01:00:00.000Z", res.TargetAt)
	assert.Equal(t, "run-1", res.InstanceID)
	assert.Equal(t, [4]string{"01", "02", "03", "04"}, res.Units())
}

func TestCountdownResponse_UnitsKeepLargeValues(t *testing.T) {
	res := dto.CountdownResponse{Remaining: model.RemainingTime{Days: 365}}

	assert.Equal(t, [4]string{"365", "00", "00", "00"}, res.Units())
}

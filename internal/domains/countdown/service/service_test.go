package service_test

import (
	"context"
	"countdown/config"
	otelMocks "countdown/infras/otel/mocks"
	"countdown/internal/domains/countdown/model/dto"
	"countdown/internal/domains/countdown/service"
	"countdown/shared/clock/mocks"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"countdown/shared/timezone"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, mexicoNow string) (service.Countdown, *mocks.Clock) {
	t.Helper()

	loc, err := time.LoadLocation(constant.TargetTimezone)
	require.NoError(t, err)

	now, err := time.ParseInLocation(constant.CivilDateTimeLayout, mexicoNow, loc)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Countdown.TargetDate = "2025-06-30"
	cfg.Countdown.TargetTime = "19:00:00"
	cfg.Countdown.Title = "Tiempo para volverte a ver"

	clk := mocks.NewClock(now)
	normalizer := timezone.New(clk, time.UTC, "en")

	return service.New(cfg, normalizer, clk, otelMocks.NewOtel()), clk
}

func TestCountdownService_Snapshot(t *testing.T) {
	svc, clk := newService(t, "2025-06-30T18:59:58")
	ctx := context.Background()

	_, err := svc.Snapshot(ctx)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err), "not started yet")

	require.NoError(t, svc.Start(ctx))

	res, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tiempo para volverte a ver", res.Title)
	assert.Equal(t, int64(2), res.Remaining.Seconds)
	assert.False(t, res.Completed)
	assert.Equal(t, "running", res.Status)
	assert.Equal(t, constant.TargetTimezone, res.Timezone)
	assert.Equal(t, "Monday, June 30, 2025, 19:00", res.Target)
	assert.Equal(t, "Mon, Jun 30, 18:59:58", res.Now)
	assert.NotEmpty(t, res.InstanceID)

	clk.Advance(2 * time.Second)

	res, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, [4]string{"00", "00", "00", "00"}, res.Units())
	assert.Equal(t, "Mon, Jun 30, 19:00:00", res.Now)

	svc.Stop(ctx)
	assert.Zero(t, clk.ActiveTimers())
}

func TestCountdownService_StartWithBadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Countdown.TargetDate = "30/06/2025"

	clk := mocks.NewClock(time.Now())
	svc := service.New(cfg, timezone.New(clk, time.UTC, "en"), clk, otelMocks.NewOtel())

	err := svc.Start(context.Background())
	assert.ErrorIs(t, err, timezone.ErrMalformedCivil)
	assert.Zero(t, clk.ActiveTimers())
}

func TestCountdownService_Reconfigure(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ReconfigureRequest
		wantErr   bool
		wantCode  int
		wantTitle string
		wantDays  int64
		wantHours int64
	}{
		{
			name:      "civil date and time",
			req:       dto.ReconfigureRequest{Date: "2025-07-02", Time: "19:00:00", Title: "Otra vez"},
			wantTitle: "Otra vez",
			wantDays:  2,
		},
		{
			name:      "date only means midnight",
			req:       dto.ReconfigureRequest{Date: "2025-07-01"},
			wantTitle: "Tiempo para volverte a ver",
			wantHours: 5,
		},
		{
			name:      "pre-built instant",
			req:       dto.ReconfigureRequest{Instant: "2025-07-01T02:00:00Z"},
			wantTitle: "Tiempo para volverte a ver",
			wantHours: 1,
		},
		{
			name:     "malformed date",
			req:      dto.ReconfigureRequest{Date: "2025-02-30"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed instant",
			req:      dto.ReconfigureRequest{Instant: "tomorrow"},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, "2025-06-30T19:00:00")
			ctx := context.Background()

			require.NoError(t, svc.Start(ctx))

			before, err := svc.Snapshot(ctx)
			require.NoError(t, err)
			require.True(t, before.Completed)

			err = svc.Reconfigure(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			res, err := svc.Snapshot(ctx)
			require.NoError(t, err)
			assert.False(t, res.Completed)
			assert.Equal(t, tt.wantTitle, res.Title)
			assert.Equal(t, tt.wantDays, res.Remaining.Days)
			assert.Equal(t, tt.wantHours, res.Remaining.Hours)
			assert.NotEqual(t, before.InstanceID, res.InstanceID)
		})
	}
}

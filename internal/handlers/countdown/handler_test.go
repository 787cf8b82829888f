package countdown_test

import (
	"bytes"
	"countdown/config"
	otelMocks "countdown/infras/otel/mocks"
	"countdown/internal/domains/countdown/mocks"
	"countdown/internal/domains/countdown/model"
	"countdown/internal/domains/countdown/model/dto"
	handler "countdown/internal/handlers/countdown"
	clockMocks "countdown/shared/clock/mocks"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"countdown/transport/http/middleware"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const apiKey = "secret"

func newRouter(t *testing.T, svc *mocks.MockCountdown, clk *clockMocks.Clock) chi.Router {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	otel := otelMocks.NewOtel()
	h := handler.New(svc, middleware.NewAuthMiddleware(otel, cfg), otel, clk)

	router := chi.NewRouter()
	router.Get("/", h.Page)
	router.Route("/v1", h.Router)

	return router
}

func snapshot(seconds int64, completed bool) dto.CountdownResponse {
	return dto.CountdownResponse{
		Title:     "Tiempo para volverte a ver",
		Remaining: model.RemainingTime{Days: 1, Hours: 2, Minutes: 3, Seconds: seconds},
		Completed: completed,
		Status:    "running",
		Timezone:  constant.TargetTimezone,
		Target:    "lunes, 30 de junio de 2025, 19:00",
		Now:       "dom, 29 jun, 15:56:57",
	}
}

func TestHandler_GetCountdown(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *mocks.MockCountdown)
		wantCode  int
	}{
		{
			name: "running countdown",
			setupMock: func(m *mocks.MockCountdown) {
				m.EXPECT().Snapshot(gomock.Any()).Return(snapshot(4, false), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not started",
			setupMock: func(m *mocks.MockCountdown) {
				m.EXPECT().Snapshot(gomock.Any()).Return(dto.CountdownResponse{}, failure.Unavailable("countdown has not started"))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCountdown(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(t, svc, clockMocks.NewClock(time.Now())).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/countdown", nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var body struct {
					Data dto.CountdownResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, snapshot(4, false), body.Data)
			}
		})
	}
}

func TestHandler_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCountdown(ctrl)
	svc.EXPECT().Snapshot(gomock.Any()).Return(snapshot(4, false), nil)

	rec := httptest.NewRecorder()
	newRouter(t, svc, clockMocks.NewClock(time.Now())).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeHTML, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Contains(t, body, "Tiempo para volverte a ver")
	assert.Contains(t, body, `<h1 id="days">01</h1>`)
	assert.Contains(t, body, `<h1 id="seconds">04</h1>`)
	assert.Contains(t, body, "Días")
	assert.Contains(t, body, "Objetivo: lunes, 30 de junio de 2025, 19:00 (Hora de México)")
}

func TestHandler_StreamCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCountdown(ctrl)
	gomock.InOrder(
		svc.EXPECT().Snapshot(gomock.Any()).Return(snapshot(1, false), nil),
		svc.EXPECT().Snapshot(gomock.Any()).Return(snapshot(0, true), nil),
	)

	clk := clockMocks.NewClock(time.Now())
	router := newRouter(t, svc, clk)
	rec := httptest.NewRecorder()
	done := make(chan struct{})

	go func() {
		defer close(done)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/countdown/stream", nil))
	}()

	require.Eventually(t, func() bool { return clk.ActiveTimers() == 1 }, time.Second, time.Millisecond)
	clk.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the completed snapshot")
	}

	assert.Equal(t, constant.ContentTypeEventStream, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, 2, strings.Count(rec.Body.String(), "event: countdown\n"))
	assert.Contains(t, rec.Body.String(), `"completed":true`)
	assert.Zero(t, clk.ActiveTimers())
}

func TestHandler_StreamCountdown_AlreadyCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCountdown(ctrl)
	svc.EXPECT().Snapshot(gomock.Any()).Return(snapshot(0, true), nil)

	clk := clockMocks.NewClock(time.Now())
	rec := httptest.NewRecorder()
	newRouter(t, svc, clk).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/countdown/stream", nil))

	assert.Equal(t, 1, strings.Count(rec.Body.String(), "event: countdown\n"))
	assert.Zero(t, clk.ActiveTimers())
}

func TestHandler_ReconfigureCountdown(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		body      string
		setupMock func(m *mocks.MockCountdown)
		wantCode  int
	}{
		{
			name: "date and time",
			key:  apiKey,
			body: `{"date":"2025-12-24","time":"20:00:00","title":"Nochebuena"}`,
			setupMock: func(m *mocks.MockCountdown) {
				m.EXPECT().Reconfigure(gomock.Any(), dto.ReconfigureRequest{
					Date:  "2025-12-24",
					Time:  "20:00:00",
					Title: "Nochebuena",
				}).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing API key",
			body:      `{"date":"2025-12-24"}`,
			setupMock: func(_ *mocks.MockCountdown) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "invalid body",
			key:       apiKey,
			body:      `{"time":"20:00:00"}`,
			setupMock: func(_ *mocks.MockCountdown) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service failure",
			key:  apiKey,
			body: `{"instant":"2025-12-25T02:00:00Z"}`,
			setupMock: func(m *mocks.MockCountdown) {
				m.EXPECT().Reconfigure(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCountdown(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, "/v1/countdown", bytes.NewBufferString(tt.body))
			if tt.key != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.key)
			}

			rec := httptest.NewRecorder()
			newRouter(t, svc, clockMocks.NewClock(time.Now())).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

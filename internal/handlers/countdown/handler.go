package countdown

import (
	"countdown/infras/otel"
	"countdown/internal/domains/countdown/model/dto"
	"countdown/internal/domains/countdown/service"
	"countdown/shared/clock"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"countdown/shared/validator"
	"countdown/transport/http/middleware"
	"countdown/transport/http/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	streamPath  = "/v1/countdown/stream"
	streamEvent = "countdown"
)

var errStreamingUnsupported = errors.New("streaming unsupported")

type Handler struct {
	service    service.Countdown
	middleware middleware.Auth
	otel       otel.Otel
	clock      clock.Clock
}

func New(service service.Countdown, middleware middleware.Auth, otel otel.Otel, clk clock.Clock) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
		clock:      clk,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/countdown", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCountdown)
		routerGroup.Get("/stream", handler.StreamCountdown)
		routerGroup.With(handler.middleware.APIKey).Put("/", handler.ReconfigureCountdown)
	})
}

// Page renders the countdown page.
// @Summary Countdown page
// @Tags Countdown
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 503 {object} response.Error
// @Router / [get]
func (handler *Handler) Page(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Page")
	defer scope.End()

	res, err := handler.service.Snapshot(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get countdown")

		response.WithError(writer, err)

		return
	}

	response.WithHTML(writer, http.StatusOK, pageTemplate, newPageData(res))
}

// GetCountdown returns the current countdown snapshot.
// @Summary Get the countdown
// @Description Remaining days, hours, minutes and seconds until the target, with the target and current time rendered in the target timezone.
// @Tags Countdown
// @Produce json
// @Success 200 {object} response.Data[dto.CountdownResponse] "Countdown snapshot"
// @Failure 503 {object} response.Error
// @Router /v1/countdown [get]
func (handler *Handler) GetCountdown(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCountdown")
	defer scope.End()

	res, err := handler.service.Snapshot(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get countdown")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// StreamCountdown pushes one snapshot per tick as server-sent events and
// closes the stream after the completed snapshot.
// @Summary Stream the countdown
// @Tags Countdown
// @Produce text/event-stream
// @Success 200 {object} dto.CountdownResponse "One event per second"
// @Failure 503 {object} response.Error
// @Router /v1/countdown/stream [get]
func (handler *Handler) StreamCountdown(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StreamCountdown")
	defer scope.End()

	if _, ok := writer.(http.Flusher); !ok {
		err := failure.InternalError(errStreamingUnsupported)
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Snapshot(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get countdown")

		response.WithError(writer, err)

		return
	}

	response.WithEventStream(writer)

	if err = response.WithEvent(writer, streamEvent, res); err != nil || res.Completed {
		return
	}

	ticks := make(chan struct{}, 1)
	timer := handler.clock.Every(constant.TickInterval, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			scope.AddEvent("Client disconnected")

			return
		case <-ticks:
			res, err = handler.service.Snapshot(ctx)
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to get countdown")

				return
			}

			if err = response.WithEvent(writer, streamEvent, res); err != nil {
				log.Debug().Err(err).Msg("countdown stream closed")

				return
			}

			if res.Completed {
				scope.AddEvent("Countdown stream completed")

				return
			}
		}
	}
}

// ReconfigureCountdown replaces the countdown target.
// @Summary Reconfigure the countdown
// @Description Either date (with optional time) in Mexico City civil time or an RFC 3339 instant.
// @Tags Countdown
// @Accept json
// @Produce json
// @Param request body dto.ReconfigureRequest true "Reconfigure Countdown Request"
// @Success 200 {object} response.Message "Countdown reconfigured successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/countdown [put]
// @Security ApiKeyAuth
func (handler *Handler) ReconfigureCountdown(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReconfigureCountdown")
	defer scope.End()

	req := dto.ReconfigureRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Reconfigure(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reconfigure countdown")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Countdown reconfigured successfully")

	response.WithMessage(writer, http.StatusOK, "Countdown reconfigured successfully")
}

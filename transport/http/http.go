package http

import (
	"context"
	"countdown/config"
	"countdown/infras/otel"
	"countdown/internal/domains/countdown/service"
	"countdown/shared/cache"
	"countdown/shared/constant"
	"countdown/transport/http/middleware"
	"countdown/transport/http/response"
	"countdown/transport/http/router"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateStarting ServerState = iota
	ServerStateReady
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 120 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Countdown  service.Countdown
	Otel       otel.Otel
	Cache      cache.RedisCache

	state   atomic.Int32
	mux     *chi.Mux
	server  *http.Server
	baseCtx context.Context
	cancel  context.CancelFunc
}

func New(
	cfg *config.Config,
	r router.Router,
	mw middleware.AppMiddleware,
	countdown service.Countdown,
	ot otel.Otel,
	c cache.RedisCache,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Countdown:  countdown,
		Otel:       ot,
		Cache:      c,
	}
}

// Start starts the countdown and marks the server ready. Serve calls it; the
// serverless entrypoint calls it on its own.
func (h *HTTP) Start(ctx context.Context) error {
	if err := h.Countdown.Start(ctx); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}

	h.SetState(ServerStateReady)

	return nil
}

// Serve starts the countdown and blocks until SIGINT or SIGTERM has been
// handled.
func (h *HTTP) Serve() {
	if err := h.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start countdown")
	}

	h.baseCtx, h.cancel = context.WithCancel(context.Background())
	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		BaseContext:       func(net.Listener) context.Context { return h.baseCtx },
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		// No WriteTimeout: the event stream stays open until completion.
	}

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	h.respondToSigterm(signals)
}

// Handler builds the routed handler with the middleware stack and the health
// endpoint.
func (h *HTTP) Handler() http.Handler {
	if h.mux != nil {
		return h.mux
	}

	h.mux = chi.NewRouter()
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.Middleware.Tracing)
	h.mux.Use(h.Middleware.CORS())
	h.mux.Use(h.Middleware.RateLimit())

	h.mux.Get("/health", h.health)
	h.Router.SetupRoutes(h.mux)

	return h.mux
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) SetState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) health(writer http.ResponseWriter, request *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	if h.Config.App.RateLimiter.Enable {
		if err := h.Cache.Ping(request.Context()); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			response.WithUnhealthy(writer)

			return
		}
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.cleanup(time.Second)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.SetState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.SetState(ServerStateInCleanupPeriod)

	h.cleanup(time.Duration(max(1, shutdownConfig.CleanupPeriodSeconds)) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup stops the countdown and ends open event streams before draining
// the server and flushing pending spans.
func (h *HTTP) cleanup(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	h.Countdown.Stop(ctx)

	if h.cancel != nil {
		h.cancel()
	}

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down tracer provider")
	}
}

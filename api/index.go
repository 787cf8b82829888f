package handler

import (
	"context"
	"countdown/config"
	"countdown/di"
	"countdown/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	server http.Handler
)

// Handler is the serverless entrypoint. Every instance derives the same target
// from configuration, so the countdown state is rebuilt on each cold start.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(initialize)

	server.ServeHTTP(w, r)
}

func initialize() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	if err = app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start countdown")
	}

	server = app.Handler()
}

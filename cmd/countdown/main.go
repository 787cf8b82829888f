package main

import (
	"context"
	"countdown/config"
	"countdown/infras/otel"
	"countdown/internal/domains/countdown/service"
	"countdown/shared/clock"
	"countdown/shared/logger"
	"countdown/shared/timezone"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLoggerTo(os.Stderr)

	logger.SetLogLevel(cfg)

	ot := otel.New(cfg)
	clk := clock.New()

	normalizer, err := timezone.NewFromConfig(clk, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize timezone normalizer")
	}

	svc := service.New(cfg, normalizer, clk, ot)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = svc.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start countdown")
	}

	if err = newDisplay(os.Stdout).run(ctx, svc, clk); err != nil {
		log.Error().Err(err).Msg("Countdown display failed")
	}

	if err = ot.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to shut down tracer provider")
	}
}

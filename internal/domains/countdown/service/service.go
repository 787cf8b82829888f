package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"countdown/config"
	"countdown/infras/otel"
	"countdown/internal/domains/countdown/engine"
	"countdown/internal/domains/countdown/model"
	"countdown/internal/domains/countdown/model/dto"
	"countdown/shared/clock"
	"countdown/shared/constant"
	"countdown/shared/failure"
	"countdown/shared/timezone"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Countdown interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context)
	Snapshot(ctx context.Context) (dto.CountdownResponse, error)
	Reconfigure(ctx context.Context, req dto.ReconfigureRequest) error
}

type serviceImpl struct {
	cfg        *config.Config
	normalizer *timezone.Normalizer
	engine     *engine.Engine
	otel       otel.Otel

	mu    sync.RWMutex
	title string
}

func New(cfg *config.Config, normalizer *timezone.Normalizer, clk clock.Clock, otel otel.Otel) Countdown {
	s := &serviceImpl{
		cfg:        cfg,
		normalizer: normalizer,
		otel:       otel,
		title:      titleOrDefault(cfg.Countdown.Title),
	}
	s.engine = engine.New(normalizer, clk, s.onComplete)

	return s
}

func (s *serviceImpl) Start(ctx context.Context) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target, err := s.normalizer.ParseInZone(s.cfg.Countdown.TargetDate, s.cfg.Countdown.TargetTime, constant.TargetTimezone)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse configured countdown target")

		return fmt.Errorf("failed to parse configured countdown target: %w", err)
	}

	if err = s.engine.Start(model.Target{Instant: target, Zone: constant.TargetTimezone}); err != nil {
		log.Error().Err(err).Msg("failed to start countdown")

		return fmt.Errorf("failed to start countdown: %w", err)
	}

	scope.SetAttribute("countdown.target", target.String())

	log.Info().
		Str("target", target.String()).
		Str("title", s.Title()).
		Msg("Countdown started")

	return nil
}

func (s *serviceImpl) Stop(ctx context.Context) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stop")
	defer scope.End()

	s.engine.Stop()
}

func (s *serviceImpl) Snapshot(ctx context.Context) (res dto.CountdownResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state := s.engine.State()
	if state.Status == model.StatusIdle {
		return res, failure.Unavailable("countdown has not started") //nolint:wrapcheck
	}

	target, err := s.normalizer.FormatInZone(state.Target.Instant, state.Target.Zone, timezone.TargetDisplay)
	if err != nil {
		log.Error().Err(err).Msg("failed to format countdown target")

		return res, fmt.Errorf("failed to format countdown target: %w", err)
	}

	now, err := s.normalizer.CurrentInstantInZone(state.Target.Zone)
	if err != nil {
		log.Error().Err(err).Msg("failed to read current time")

		return res, fmt.Errorf("failed to read current time: %w", err)
	}

	current, err := s.normalizer.FormatInZone(timezone.InstantOf(now), state.Target.Zone, timezone.NowDisplay)
	if err != nil {
		log.Error().Err(err).Msg("failed to format current time")

		return res, fmt.Errorf("failed to format current time: %w", err)
	}

	res.FromModel(state, s.Title(), target, current)

	return res, nil
}

func (s *serviceImpl) Reconfigure(ctx context.Context, req dto.ReconfigureRequest) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reconfigure")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target, err := s.targetFrom(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse countdown target")

		return err
	}

	if err = s.engine.Reconfigure(model.Target{Instant: target, Zone: constant.TargetTimezone}); err != nil {
		log.Error().Err(err).Msg("failed to reconfigure countdown")

		if errors.Is(err, engine.ErrInvalidTarget) {
			return failure.BadRequest(err) //nolint:wrapcheck
		}

		return fmt.Errorf("failed to reconfigure countdown: %w", err)
	}

	if req.Title != constant.Empty {
		s.mu.Lock()
		s.title = req.Title
		s.mu.Unlock()
	}

	scope.SetAttribute("countdown.target", target.String())
	log.Info().Str("target", target.String()).Msg("Countdown reconfigured")

	return nil
}

func (s *serviceImpl) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.title
}

func (s *serviceImpl) targetFrom(req dto.ReconfigureRequest) (timezone.Instant, error) {
	if req.Instant == constant.Empty {
		return s.normalizer.ParseInZone(req.Date, req.Time, constant.TargetTimezone)
	}

	at, err := time.Parse(constant.DateFormat, req.Instant)
	if err != nil {
		return timezone.InvalidInstant, failure.BadRequest(fmt.Errorf("failed to parse instant: %w", err)) //nolint:wrapcheck
	}

	return timezone.InstantOf(at), nil
}

func (s *serviceImpl) onComplete() {
	_, scope := s.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".CountdownCompleted")
	defer scope.End()

	state := s.engine.State()
	scope.SetAttribute("countdown.instance_id", state.InstanceID)
	scope.AddEvent("Countdown completed")

	log.Info().
		Str("title", s.Title()).
		Str("instance_id", state.InstanceID).
		Msg("Countdown completed")
}

func titleOrDefault(title string) string {
	if title == constant.Empty {
		return constant.DefaultCountdownTitle
	}

	return title
}

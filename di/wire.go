//go:build wireinject
// +build wireinject

package di

import (
	"countdown/config"
	"countdown/infras/otel"
	"countdown/infras/redis"
	countdownHandler "countdown/internal/handlers/countdown"
	"countdown/shared/cache"
	"countdown/shared/clock"
	"countdown/shared/timezone"
	"countdown/transport/http"
	"countdown/transport/http/middleware"
	"countdown/transport/http/router"

	countdownService "countdown/internal/domains/countdown/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
	timezone.NewFromConfig,
)

var countdownDomain = wire.NewSet(
	countdownService.New,
)

var domains = wire.NewSet(
	countdownDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	countdownHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

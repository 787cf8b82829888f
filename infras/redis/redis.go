package redis

import (
	"context"
	"countdown/config"
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/retry"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	connectTimeout = 30 * time.Second
	retryDelay     = 500 * time.Millisecond
	retryMaxDelay  = 5 * time.Second
)

// New builds the Redis client. The connection is only verified when the rate
// limiter is enabled since nothing else talks to Redis.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if !config.App.RateLimiter.Enable {
		log.Info().Msg("Rate limiter disabled, skipping Redis connection check")

		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	err := retry.Do(
		func() error {
			return client.Ping(ctx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(uint(max(1, config.Cache.Redis.MaxRetry))),
		retry.Delay(retryDelay),
		retry.MaxDelay(retryMaxDelay),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("Retrying Redis connection")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}

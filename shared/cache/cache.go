package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"countdown/infras/otel"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	keySeparator          = ":"
	Nil                   = redis.Nil
)

type RedisCache interface {
	// Increment bumps the counter stored at key and returns its new value.
	// The window starts with the first increment and is not extended by
	// later ones.
	Increment(ctx context.Context, key string, windowSeconds int) (int64, error)
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// BuildKey joins the non-empty parts into a namespaced cache key.
func BuildKey(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, keySeparator)
}

// Increment implements RedisCache.
func (cache *redisCache) Increment(ctx context.Context, key string, windowSeconds int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Duration(windowSeconds)*time.Second)

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisCache", "Increment").Msg("failed to increment cache")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return incr.Val(), nil
}

// Ping implements RedisCache.
func (cache *redisCache) Ping(ctx context.Context) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Ping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = cache.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping cache: %w", err)
	}

	return nil
}

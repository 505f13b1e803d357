// Package cache keeps forecast responses in Redis and coalesces identical in-flight requests
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"geo-weather/internal/config"
	"geo-weather/internal/providers/openweathermap"
)

const keyPrefix = "geo-weather:forecast:"

// Provider is the upstream the cache falls back to
type Provider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.ForecastAPIResponse, error)
}

// ForecastCache is a read-through Provider decorator
type ForecastCache struct {
	client *redis.Client
	next   Provider
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// NewRedisForecastCache connects to Redis and verifies the connection
func NewRedisForecastCache(cfg config.CacheConfig, next Provider, logger *slog.Logger) (*ForecastCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	return NewForecastCache(client, cfg.TTL, next, logger), nil
}

func NewForecastCache(client *redis.Client, ttl time.Duration, next Provider, logger *slog.Logger) *ForecastCache {
	return &ForecastCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger.With("component", "forecast-cache"),
	}
}

// Key rounds coordinates to two decimals (about 1 km) so nearby requests share an entry
func Key(latitude, longitude float64) string {
	return fmt.Sprintf("%s%.2f:%.2f", keyPrefix, latitude, longitude)
}

// GetForecast serves from Redis when possible. Redis failures degrade to a direct fetch.
func (c *ForecastCache) GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.ForecastAPIResponse, error) {
	key := Key(latitude, longitude)

	if resp, ok := c.get(ctx, key); ok {
		c.logger.Debug("forecast cache hit", "key", key)
		return resp, nil
	}

	// The shared fetch is not bound to any one caller's cancellation
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		resp, err := c.next.GetForecast(fetchCtx, latitude, longitude)
		if err != nil {
			return nil, err
		}
		c.set(fetchCtx, key, resp)
		return resp, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	c.logger.Debug("forecast cache miss", "key", key, "shared", res.Shared)

	return res.Val.(*openweathermap.ForecastAPIResponse), nil
}

func (c *ForecastCache) get(ctx context.Context, key string) (*openweathermap.ForecastAPIResponse, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("forecast cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var resp openweathermap.ForecastAPIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	return &resp, true
}

func (c *ForecastCache) set(ctx context.Context, key string, resp *openweathermap.ForecastAPIResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn("failed to encode forecast for cache", "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("forecast cache write failed", "key", key, "error", err)
	}
}

// Close releases the Redis connection pool
func (c *ForecastCache) Close() error {
	return c.client.Close()
}

// Package redis holds the optional Redis client used by the login rate
// limiter. A local single-user deployment normally runs without Redis; the
// limiter falls back to in-memory counters when Client() returns nil.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Config holds Redis connection configuration.
type Config struct {
	URL      string // redis://... or rediss://... for TLS
	Password string
}

// Client returns the singleton Redis client, or nil when Redis is not
// configured or the connection failed.
func Client() *redis.Client {
	return client
}

// Initialize connects the singleton client. Safe for concurrent calls; only
// the first call initializes.
func Initialize(cfg Config) error {
	clientOnce.Do(func() {
		if cfg.URL == "" {
			clientErr = errors.New("redis: REDIS_URL not configured")
			return
		}

		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			clientErr = fmt.Errorf("redis: invalid URL: %w", err)
			return
		}
		if cfg.Password != "" {
			opts.Password = cfg.Password
		}

		c := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := c.Ping(ctx).Err(); err != nil {
			clientErr = fmt.Errorf("redis: ping failed: %w", err)
			_ = c.Close()
			return
		}
		client = c
	})
	return clientErr
}

// Close releases the singleton client if one was initialized.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

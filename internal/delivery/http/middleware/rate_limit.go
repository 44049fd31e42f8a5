package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/pkg/redis"
	"ats-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the fixed-window limiter.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

// LoginRateLimitConfig returns the config for the login endpoint, the only
// unauthenticated mutation surface.
func LoginRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    time.Duration(windowSeconds) * time.Second,
		KeyPrefix: "rl:login:",
	}
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// startCleanup drops expired in-memory entries in the background.
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit enforces a fixed-window per-IP limit, counting in Redis when a
// client is configured and in process memory otherwise.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var over bool
		if rc := redis.Client(); rc != nil {
			over = overLimitRedis(c.Request.Context(), key, cfg)
		} else {
			over = overLimitMemory(key, cfg)
		}

		if over {
			requestID, _ := c.Get("RequestID")
			idStr, _ := requestID.(string)
			security.LogAuthEvent(security.EventLoginRateLimited, "", c.ClientIP(), idStr)
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many attempts. Please try again later.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func overLimitRedis(ctx context.Context, key string, cfg RateLimitConfig) bool {
	rc := redis.Client()
	count, err := rc.Incr(ctx, key).Result()
	if err != nil {
		// fail open: a broken Redis should not lock the single user out
		return false
	}
	if count == 1 {
		rc.Expire(ctx, key, cfg.Window)
	}
	return int(count) > cfg.Limit
}

func overLimitMemory(key string, cfg RateLimitConfig) bool {
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count > cfg.Limit
}

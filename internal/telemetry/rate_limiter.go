package telemetry

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/core/port"
	"todolist/pkg/auth"
	"todolist/pkg/config"
)

// RateLimiter throttles requests per endpoint. Counters live in a
// port.CounterStore so a single node can run on the in-process store and a
// multi-node deployment can share counters through redis.
type RateLimiter struct {
	store   port.CounterStore
	config  map[string]config.RateLimitConfig
	logger  *zap.Logger
	metrics *AppMetrics
}

func NewRateLimiter(store port.CounterStore, cfg *config.AppConfig, logger *zap.Logger, metrics *AppMetrics) *RateLimiter {
	return &RateLimiter{
		store:   store,
		config:  cfg.RateLimitConfigs,
		logger:  logger,
		metrics: metrics,
	}
}

// RateLimitMiddleware middleware for rate limiting
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		methodPath := c.Request.Method + " " + path

		cfg, exists := rl.config[methodPath]
		if !exists {
			cfg, exists = rl.config[path]
			if !exists {
				cfg = rl.config["default"]
			}
		}

		key, keyType := rl.generateKey(c, methodPath)

		count, resetAt, err := rl.store.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			rl.logger.Error("Rate limit check failed",
				zap.String("key", key),
				zap.String("path", path),
				zap.Error(err))
			c.Next()
			return
		}

		remaining := cfg.Requests - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if count > cfg.Requests {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(c.Request.Context(), path, keyType)
			}

			rl.logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", path),
				zap.Int("limit", cfg.Requests),
				zap.Duration("window", cfg.Window))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Limit: %d per %v", cfg.Requests, cfg.Window),
				"retry_after": int(time.Until(resetAt).Seconds()),
			})
			c.Abort()
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(c.Request.Context(), path, keyType)
		}

		c.Next()
	}
}

// generateKey scopes the counter to the authenticated user when there is one,
// otherwise to the client address.
func (rl *RateLimiter) generateKey(c *gin.Context, path string) (string, string) {
	if userID, ok := auth.CurrentUserID(c); ok {
		return fmt.Sprintf("rate_limit:%s:user_%d", path, userID), "user"
	}

	ip := GetClientIP(c)
	if strings.Contains(ip, ":") {
		// strip port if present
		if host := strings.LastIndex(ip, ":"); host > 0 && !strings.Contains(ip[:host], ":") {
			ip = ip[:host]
		}
	}

	return fmt.Sprintf("rate_limit:%s:%s", path, ip), "ip"
}

package telemetry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todolist/internal/adapter/cache"
	"todolist/internal/telemetry"
	"todolist/pkg/config"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newLimitedRouter(requests int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	cfg.RateLimitConfigs = map[string]config.RateLimitConfig{
		"default": {Requests: requests, Window: time.Minute},
	}

	limiter := telemetry.NewRateLimiter(cache.NewMemoryStore(), cfg, zap.NewNop(), nil)

	router := gin.New()
	router.Use(limiter.RateLimitMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	return router
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter(3)

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter(2)

	var last *httptest.ResponseRecorder

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	Expect(last.Code).To(Equal(http.StatusTooManyRequests))
	assert.NotEmpty(t, last.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimiter_SetsInformativeHeaders(t *testing.T) {
	router := newLimitedRouter(5)

	req, _ := http.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "5", rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_SeparateClientsSeparateCounters(t *testing.T) {
	RegisterTestingT(t)

	router := newLimitedRouter(1)

	first, _ := http.NewRequest("GET", "/ping", nil)
	first.Header.Set("X-Forwarded-For", "10.0.0.1")

	second, _ := http.NewRequest("GET", "/ping", nil)
	second.Header.Set("X-Forwarded-For", "10.0.0.2")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, first)
	Expect(rr.Code).To(Equal(http.StatusOK))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, second)
	Expect(rr.Code).To(Equal(http.StatusOK))
}

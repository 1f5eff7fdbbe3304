package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"coin-launch-gateway/internal/adapter/http/middleware"
	"coin-launch-gateway/internal/adapter/storage/memory"
	redisStore "coin-launch-gateway/internal/adapter/storage/redis"
	"coin-launch-gateway/internal/core/ports"
	"coin-launch-gateway/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(store ports.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.POST("/api/launch", middleware.RateLimiter(store, rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func launchFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/launch", nil)
	req.RemoteAddr = ip + ":40000"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := setupRateLimitRouter(redisStore.NewRateLimitStore(client))

	for i := 0; i < 3; i++ {
		w := launchFrom(router, "198.51.100.1")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(2-i), w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := setupRateLimitRouter(redisStore.NewRateLimitStore(client))

	// Use up the limit
	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, launchFrom(router, "198.51.100.1").Code)
	}

	// 4th request should be blocked
	w := launchFrom(router, "198.51.100.1")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many token launches from this IP")
}

func TestRateLimiter_PerClientIP(t *testing.T) {
	router := setupRateLimitRouter(memory.NewRateLimitStore())

	// Client A uses up the limit
	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, launchFrom(router, "198.51.100.1").Code)
	}
	assert.Equal(t, 429, launchFrom(router, "198.51.100.1").Code)

	// Client B should still be allowed (independent counter)
	assert.Equal(t, 200, launchFrom(router, "198.51.100.2").Code)
}

func TestRateLimiter_DegradedModeOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRateLimitStore(ctrl)
	store.EXPECT().Allow(gomock.Any(), "198.51.100.1", int64(3), time.Minute).
		Return(nil, errors.New("connection refused")).Times(5)

	router := setupRateLimitRouter(store)
	for i := 0; i < 5; i++ {
		w := launchFrom(router, "198.51.100.1")
		assert.Equal(t, 200, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

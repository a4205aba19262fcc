package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sovtoken-payments/internal/adapter/http/middleware"
	redisStore "sovtoken-payments/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store *redisStore.RateLimitStore, did string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	setDID := func(c *gin.Context) {
		if did != "" {
			c.Set(middleware.CtxSubmitterDID, did)
		}
		c.Next()
	}

	r.GET("/test", setDID, middleware.RateLimiter(store, "requests", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) (*miniredis.Miniredis, *redisStore.RateLimitStore) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redisStore.NewRateLimitStore(client)
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store, "V4SGRU86Z58d6TV7PBUe6f")

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store, "V4SGRU86Z58d6TV7PBUe6f")

	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_KeysBySubmitter(t *testing.T) {
	mr, store := newStore(t)
	router := setupRateLimitRouter(store, "Th7MpTaRZVRYnPiabds81Y")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	keys := mr.Keys()
	assert.Len(t, keys, 1)
	assert.Contains(t, keys[0], "ratelimit:Th7MpTaRZVRYnPiabds81Y:requests:")
}

func TestRateLimiter_FallsBackToClientIP(t *testing.T) {
	mr, store := newStore(t)
	router := setupRateLimitRouter(store, "")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	keys := mr.Keys()
	assert.Len(t, keys, 1)
	assert.Contains(t, keys[0], "ratelimit:ip:")
}

func TestRateLimiter_DegradedMode(t *testing.T) {
	mr, store := newStore(t)
	router := setupRateLimitRouter(store, "V4SGRU86Z58d6TV7PBUe6f")
	mr.Close()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code, "should allow request when Redis is down")
}

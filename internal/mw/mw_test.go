package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_Generates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, seen)
}

func TestRequestID_ReusesInbound(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, path := range []string{"/ok", "/missing", "/broken?x=1"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[2].ContextMap()
	assert.Equal(t, "/broken", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.EqualValues(t, http.StatusBadGateway, fields["status"])
	assert.NotEmpty(t, fields[RequestIDKey])
}

func TestRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2, time.Minute)

	r := gin.New()
	r.Use(RateLimiter(limiter))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"code":"TOO_MANY_REQUESTS","message":"Rate limit exceeded","status":429}`, w.Body.String())
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, limiter.Len())
}

func TestIPRateLimiter_Evicts(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1, 20*time.Millisecond)

	first := limiter.GetLimiter("192.0.2.1")
	assert.Same(t, first, limiter.GetLimiter("192.0.2.1"))

	time.Sleep(50 * time.Millisecond)
	assert.NotSame(t, first, limiter.GetLimiter("192.0.2.1"))
}

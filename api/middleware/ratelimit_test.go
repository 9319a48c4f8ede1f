package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, 300*time.Millisecond)
	defer rl.Stop()

	// Burst of 3 is allowed
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))

	assert.False(t, rl.Allow("127.0.0.1"))

	// Different IP has its own bucket
	assert.True(t, rl.Allow("192.168.1.1"))

	// One token refills every window/limit
	time.Sleep(150 * time.Millisecond)
	assert.True(t, rl.Allow("127.0.0.1"))
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	rl.Stop()
	rl.Stop()

	assert.Equal(t, 1, rl.Limit())
	assert.Equal(t, time.Minute, rl.Window())
}

func TestNewRateLimiter_NormalizesBounds(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	defer rl.Stop()

	assert.Equal(t, 1, rl.Limit())
	assert.Equal(t, time.Minute, rl.Window())
}

func TestRateLimitMiddleware_AllowsRequestsUnderLimit(t *testing.T) {
	limiter := NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/api/render", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
		assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitMiddleware_Returns429ForExceededLimit(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/render", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("127.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, send("127.0.0.1:4321").Code)

	rec := send("127.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")

	// Ports are ignored, other hosts are not
	assert.Equal(t, http.StatusOK, send("192.168.1.1:5678").Code)
}

func TestRateLimitMiddleware_RefillsOverTime(t *testing.T) {
	limiter := NewRateLimiter(1, 100*time.Millisecond)
	defer limiter.Stop()

	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		req := httptest.NewRequest("GET", "/api/render", nil)
		req.RemoteAddr = "127.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, http.StatusOK, send())
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		setupReq   func(*http.Request)
		expectedIP string
	}{
		{
			name: "uses first X-Forwarded-For hop",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "uses X-Real-IP header",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "203.0.113.1")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "falls back to RemoteAddr host",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.1:1234"
			},
			expectedIP: "192.168.1.1",
		},
		{
			name: "keeps RemoteAddr without port",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.1"
			},
			expectedIP: "192.168.1.1",
		},
		{
			name: "prefers X-Forwarded-For over X-Real-IP",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1")
				r.Header.Set("X-Real-IP", "198.51.100.1")
				r.RemoteAddr = "10.0.0.1:1234"
			},
			expectedIP: "203.0.113.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			tt.setupReq(req)

			assert.Equal(t, tt.expectedIP, extractIP(req))
		})
	}
}

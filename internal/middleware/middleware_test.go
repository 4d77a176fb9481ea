package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"

	"novelverse/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLimiterFixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	l, err := NewLimiter(mr.Addr(), "", "test:ratelimit", 2, time.Hour)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	if !l.Allow(ctx, "/browse", "ip-1") || !l.Allow(ctx, "/browse", "ip-1") {
		t.Fatalf("first two requests should pass")
	}
	d := l.Check(ctx, "/browse", "ip-1")
	if d.Allowed || d.Remaining != 0 || d.RetryAfter <= 0 || d.RetryAfter > time.Hour {
		t.Fatalf("third request = %+v, want blocked with a retry hint", d)
	}
	if !l.Allow(ctx, "/browse", "ip-2") {
		t.Fatalf("other clients have their own quota")
	}
	if d := l.Check(ctx, "/api/novels", "ip-1"); !d.Allowed || d.Remaining != 1 {
		t.Fatalf("other route = %+v, want its own quota", d)
	}
}

func TestLimiterFailsClosed(t *testing.T) {
	mr := miniredis.RunT(t)
	l, err := NewLimiter(mr.Addr(), "", "", 1, time.Hour)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	defer l.Close()
	mr.Close()
	if l.Allow(context.Background(), "/browse", "ip-1") {
		t.Fatalf("limiter should fail closed on redis errors")
	}
}

func TestNewLimiterValidates(t *testing.T) {
	if l, err := NewLimiter("", "", "", 1, time.Second); err == nil || l != nil {
		t.Fatalf("expected error for empty addr")
	}
	if _, err := NewLimiter("localhost:6379", "", "", 0, time.Second); err == nil {
		t.Fatalf("expected error for zero limit")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	l, err := NewLimiter(mr.Addr(), "", "", 1, time.Hour)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	defer l.Close()

	r := gin.New()
	r.GET("/browse", RateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/browse", nil))
	if w.Code != http.StatusOK || w.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("first = %d remaining %q", w.Code, w.Header().Get("X-RateLimit-Remaining"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/browse", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second = %d, want 429", w.Code)
	}
	if ra := w.Header().Get("Retry-After"); ra != "3600" {
		t.Fatalf("Retry-After = %q, want 3600", ra)
	}
	if w.Header().Get("X-RateLimit-Limit") != "1" {
		t.Fatalf("X-RateLimit-Limit = %q", w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRetrySeconds(t *testing.T) {
	cases := map[time.Duration]int{
		0:                       1,
		200 * time.Millisecond:  1,
		time.Second:             1,
		1500 * time.Millisecond: 2,
		time.Hour:               3600,
	}
	for in, want := range cases {
		if got := retrySeconds(in); got != want {
			t.Fatalf("retrySeconds(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestRequestIDPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = logger.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	if seen != "abc" || w.Header().Get(RequestIDHeader) != "abc" {
		t.Fatalf("request id = %q / %q, want abc", seen, w.Header().Get(RequestIDHeader))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
}

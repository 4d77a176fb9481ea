package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// windowScript bumps the window counter and returns it with the window's
// remaining lifetime in milliseconds.
var windowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// Decision is the outcome of one counted request.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter counts search requests per route and client in fixed Redis windows.
type Limiter struct {
	limit  int
	window time.Duration
	client *redis.Client
	prefix string
}

func NewLimiter(addr, password, prefix string, limit int, window time.Duration) (*Limiter, error) {
	if limit <= 0 || window < time.Millisecond {
		return nil, errors.New("rate limiter requires a positive limit and a window of at least 1ms")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("rate limiter redis addr is required")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "novelverse:search"
	}
	return &Limiter{
		limit:  limit,
		window: window,
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		prefix: prefix,
	}, nil
}

// Check counts one request for client on route. Redis failures deny with a
// full-window retry hint.
func (l *Limiter) Check(ctx context.Context, route, client string) Decision {
	deny := Decision{Limit: l.limit, RetryAfter: l.window}
	route = strings.TrimSpace(route)
	if route == "" {
		route = "unmatched"
	}
	client = strings.TrimSpace(client)
	if client == "" {
		client = "unknown"
	}
	windowMs := l.window.Milliseconds()
	slot := time.Now().UTC().UnixMilli() / windowMs
	key := fmt.Sprintf("%s:%s:%s:%d", l.prefix, route, client, slot)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	res, err := windowScript.Run(ctx, l.client, []string{key}, windowMs).Int64Slice()
	if err != nil || len(res) != 2 {
		return deny
	}
	count, ttl := res[0], res[1]
	if ttl < 0 {
		ttl = windowMs
	}
	return Decision{
		Allowed:    count <= int64(l.limit),
		Limit:      l.limit,
		Remaining:  max(0, l.limit-int(count)),
		RetryAfter: time.Duration(ttl) * time.Millisecond,
	}
}

// Allow is Check for callers that only need the verdict.
func (l *Limiter) Allow(ctx context.Context, route, client string) bool {
	if l == nil {
		return false
	}
	return l.Check(ctx, route, client).Allowed
}

func (l *Limiter) Close() error {
	if l == nil {
		return nil
	}
	return l.client.Close()
}

// RateLimit keeps a separate quota per matched route and client IP. Every
// counted response carries X-RateLimit-Limit and X-RateLimit-Remaining; a 429
// also carries Retry-After in whole seconds. A nil limiter lets everything
// through.
func RateLimit(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		d := l.Check(c.Request.Context(), c.FullPath(), c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(retrySeconds(d.RetryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func retrySeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	return max(1, s)
}

// Package ratelimit provides a fixed-window request limiter backed by Redis,
// used to throttle the credential endpoints (login, OTP request).
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window rate limiter. The Redis-backed implementation
// works across multiple server instances; a nil client disables limiting.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
	logger *slog.Logger
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// New returns a Limiter. With a nil Redis client every request is allowed,
// so deployments without Redis keep working.
func New(rdb *redis.Client, limit int, window time.Duration, prefix string, logger *slog.Logger) *Limiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, prefix: prefix, logger: logger}
}

// Wrap throttles the handler per client IP. Redis errors fail open: an
// unavailable limiter should not take login down with it.
func (l *Limiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if l.rdb == nil {
			next(w, r)
			return
		}
		key := l.prefix + ":" + clientKey(r)
		count, err := l.incr(r.Context(), key)
		if err != nil {
			l.logger.Warn("rate limiter unavailable, allowing request", "error", err)
			next(w, r)
			return
		}
		if count > int64(l.limit) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

func (l *Limiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

func clientKey(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		parts := strings.Split(ip, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

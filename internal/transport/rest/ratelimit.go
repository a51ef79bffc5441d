package rest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rentaride/car-rental-api/internal/metrics"
)

// RouteLimit defines a token bucket capacity and window for a route.
type RouteLimit struct {
	Name     string        // logical route name for the key
	Capacity int           // max tokens in the bucket
	Window   time.Duration // window over which capacity refills linearly
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return "unknown"
}

// RateLimit applies a Redis token-bucket limiter keyed by client IP. The
// Lua script keeps refill and take atomic across instances.
func RateLimit(rdb *redis.Client, limit RouteLimit) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now().UnixMilli()
			key := fmt.Sprintf("rl:%s:ip:%s", limit.Name, clientIP(r))

			allowed, tokens, retryAfter := takeToken(r.Context(), rdb, key, now, limit)
			if !allowed {
				if retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				}
				metrics.RateLimitRejections.Inc()
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%.0f", tokens))
			next.ServeHTTP(w, r)
		})
	}
}

var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local window = tonumber(ARGV[3]) -- in ms

local bucket = redis.call("HMGET", key, "tokens", "ts")
local tokens = tonumber(bucket[1])
local ts = tonumber(bucket[2])

if tokens == nil or ts == nil then
  tokens = capacity
  ts = now
end

local delta = now - ts
if delta < 0 then delta = 0 end

local refill = (delta * capacity) / window
tokens = math.min(capacity, tokens + refill)
ts = now

local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end

redis.call("HMSET", key, "tokens", tokens, "ts", ts)
redis.call("PEXPIRE", key, window)

local retryAfterMs = 0
if allowed == 0 then
  local need = 1 - tokens
  if need < 0 then need = 0 end
  retryAfterMs = math.ceil(need * window / capacity)
end

return {allowed, tokens, retryAfterMs}
`)

// takeToken fails open on Redis errors so a cache outage never locks out
// the auth endpoints.
func takeToken(ctx context.Context, rdb *redis.Client, key string, nowMs int64, limit RouteLimit) (allowed bool, remaining float64, retryAfterSec int64) {
	res, err := rateLimitScript.Run(ctx, rdb, []string{key}, nowMs, limit.Capacity, limit.Window.Milliseconds()).Result()
	if err != nil {
		return true, float64(limit.Capacity), 0
	}
	arr, ok := res.([]interface{})
	if !ok || len(arr) != 3 {
		return true, float64(limit.Capacity), 0
	}
	allowed = arr[0].(int64) == 1
	remaining, _ = toFloat(arr[1])
	retryMs, _ := toFloat(arr[2])
	if retryMs > 0 {
		retryAfterSec = int64((retryMs + 999) / 1000) // ceil
	}
	return
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

package http_access_middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemind/core/internal/delivery/http/common"
	"golang.org/x/time/rate"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(ctx *gin.Context) string

func ByClientIP(ctx *gin.Context) string {
	return ctx.ClientIP()
}

// ByUser counts authenticated callers by user id and falls back to the
// client address.
func ByUser(ctx *gin.Context) string {
	if auth := http_common.Auth(ctx); auth.Authenticated {
		return "user:" + auth.UserID.String()
	}
	return "ip:" + ctx.ClientIP()
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter allows n requests per window for each key.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(n int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Every(window / time.Duration(n)),
		burst:    n,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = rl.now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// Cleanup drops limiters idle for longer than idle.
func (rl *RateLimiter) Cleanup(idle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-idle)
	for k, e := range rl.limiters {
		if e.lastAccess.Before(threshold) {
			delete(rl.limiters, k)
		}
	}
}

func Throttle(rl *RateLimiter, key KeyFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if rl.Allow(key(ctx)) {
			ctx.Next()
			return
		}
		ctx.AbortWithStatusJSON(http.StatusTooManyRequests, http_common.ErrorResponse{
			Error: "request was throttled",
			Code:  http.StatusTooManyRequests,
		})
	}
}

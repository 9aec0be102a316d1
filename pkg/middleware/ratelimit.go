package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"lotr-api/pkg/apperr"
	"lotr-api/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter tracks one token bucket per client address. The bucket
// refills the full limit over the window, approximating the fixed
// window of limit requests per window.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	window   time.Duration
	log      *zap.Logger

	stop     chan struct{}
	stopOnce sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(limit int, window time.Duration, log *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(float64(limit) / window.Seconds()),
		burst:    limit,
		window:   window,
		log:      log.With(zap.String("middleware", "ratelimit")),
		stop:     make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Handler enforces the limit, keyed by client address.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientAddr(r)

		if !rl.allow(key) {
			rl.log.Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", r.URL.Path),
			)

			retryAfter := fmt.Sprintf("%d minutes", int(rl.window.Minutes()))
			utils.ResponseError(w, apperr.RateLimited(retryAfter, map[string]any{
				"limit": fmt.Sprintf("%d requests per %d minutes", rl.burst, int(rl.window.Minutes())),
			}))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// Stop ends the background cleanup goroutine. Safe to call more than
// once; the limiter keeps serving requests afterwards.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
}

// cleanup drops visitors idle for longer than the window
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.visitors {
				if time.Since(v.lastSeen) > rl.window {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// clientAddr resolves the client key: proxy headers first, then the
// connection address.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordcloud/internal/config"
	"github.com/heartmarshall/wordcloud/pkg/ctxutil"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter applies a token bucket per client: the user ID for
// authenticated requests, the client address otherwise.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stop     chan struct{}
	stopOnce sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter that evicts idle clients every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		burst:   cfg.Burst,
		clients: make(map[string]*clientLimiter),
		stop:    make(chan struct{}),
	}
	if cfg.RequestsPerMinute > 0 {
		rl.limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Middleware rejects requests over the client's budget with 429 and a
// Retry-After header. A zero rate disables limiting.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		if rl.limit == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait := rl.reserve(clientKey(r), time.Now()); wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// reserve takes a token for key. It returns 0 when the request may proceed,
// otherwise how long the client has to wait.
func (rl *RateLimiter) reserve(key string, now time.Time) time.Duration {
	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.mu.Unlock()

	res := c.limiter.ReserveN(now, 1)
	if !res.OK() {
		return time.Minute
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay
	}
	return 0
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return "ip:" + ip
	}
	return "ip:" + clientIP(r)
}

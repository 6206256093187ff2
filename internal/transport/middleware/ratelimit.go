package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// idleEviction is how long a client may be silent before its bucket is
// dropped by the cleanup loop.
const idleEviction = 10 * time.Minute

// RateLimiter applies a token-bucket limit per client IP. One limiter can
// back several routes; each call to Limit gets its own budget parameters but
// buckets are shared per IP.
type RateLimiter struct {
	buckets sync.Map // remote addr -> *bucket
	stop    chan struct{}
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are evicted every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.evictIdle(cleanupInterval)
	return rl
}

// Stop ends the background eviction loop.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit rejects requests beyond maxPerMinute per client IP with 429 and a
// Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(r.RemoteAddr, maxPerMinute)
			if !b.take() {
				retryAfter := int(60.0/float64(maxPerMinute)) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucketFor(addr string, maxPerMinute int) *bucket {
	limit := float64(maxPerMinute)
	val, _ := rl.buckets.LoadOrStore(addr, &bucket{
		tokens:     limit,
		maxTokens:  limit,
		refillRate: limit / 60.0,
		lastRefill: time.Now(),
	})
	return val.(*bucket)
}

// take refills the bucket for the elapsed time and consumes one token,
// reporting whether one was available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) evictIdle(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > idleEviction {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}

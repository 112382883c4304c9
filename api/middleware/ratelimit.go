// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Implements per-IP token buckets on golang.org/x/time/rate with idle eviction

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client key
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	stop     chan struct{}
	stopOnce sync.Once

	// trusted peers may report the client address in proxy headers
	trusted []*net.IPNet
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second per key
// with bursts of up to burst requests. Keys idle for a minute are evicted.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    max(burst, 1),
		idleTTL:  time.Minute,
		stop:     make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle(time.Now())
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.visitors, key)
		}
	}
}

// Stop ends the eviction goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Allow reports whether a request from key may proceed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// retryAfter is the whole number of seconds until one token is available
func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 1
	}
	return max(int(1/float64(rl.limit)+0.999), 1)
}

// TrustProxies lists the reverse proxies, as IPs or CIDRs, whose
// X-Forwarded-For and X-Real-IP headers are believed. Headers from any
// other peer are ignored.
func (rl *RateLimiter) TrustProxies(proxies []string) error {
	nets := make([]*net.IPNet, 0, len(proxies))
	for _, p := range proxies {
		if !strings.Contains(p, "/") {
			ip := net.ParseIP(p)
			if ip == nil {
				return fmt.Errorf("invalid trusted proxy %q", p)
			}
			bits := 8 * len(ip.To16())
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(p)
		if err != nil {
			return fmt.Errorf("invalid trusted proxy %q: %w", p, err)
		}
		nets = append(nets, n)
	}

	rl.mu.Lock()
	rl.trusted = nets
	rl.mu.Unlock()
	return nil
}

func (rl *RateLimiter) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for _, n := range rl.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// clientIP keys the request. The peer address is used unless the peer is a
// trusted proxy; then the nearest untrusted X-Forwarded-For hop wins, since
// entries further left are supplied by the client.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		peer = host
	}
	if !rl.isTrusted(peer) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !rl.isTrusted(hop) {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	burst := strconv.Itoa(limiter.burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", burst)

			if !limiter.Allow(limiter.clientIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", strconv.Itoa(limiter.retryAfter()))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"code":429,"msg":"Rate limit exceeded. Please try again later.","data":[]}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

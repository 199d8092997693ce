// middleware/ratelimit.go
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IP başına token bucket. Giriş/kayıt uçları için kaba kuvvet freni.
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*ipLimiter
	r        rate.Limit
	burst    int
}

func NewRateLimiter(perMinute int, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: map[string]*ipLimiter{},
		r:        rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}

	// Eski ziyaretçileri temizle
	go func() {
		for {
			time.Sleep(5 * time.Minute)
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &ipLimiter{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.get(ip).Allow() {
			http.Error(w, "Çok fazla istek, lütfen bekleyin", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middlewares

import (
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket. An IP that empties its bucket is
// blocked for blockTime. Clients idle for longer than it takes to refill a
// bucket and serve a block are evicted.
type RateLimiter struct {
	log       *zap.Logger
	clients   map[string]*rateClient
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type rateClient struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	idleTTL := per * time.Duration(requests)
	if blockTime > idleTTL {
		idleTTL = blockTime
	}
	return &RateLimiter{
		log:       logger,
		clients:   make(map[string]*rateClient),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)

		r.mu.Lock()
		now := r.now()
		r.sweep(now)

		client, exists := r.clients[ip]
		if !exists {
			client = &rateClient{limiter: rate.NewLimiter(rate.Every(r.per), r.requests)}
			r.clients[ip] = client
		}
		client.lastSeen = now

		if now.Before(client.blockedUntil) {
			retryAfter := client.blockedUntil.Sub(now)
			r.mu.Unlock()
			r.reject(w, ip, retryAfter)
			return
		}

		allowed := client.limiter.AllowN(now, 1)
		if !allowed {
			client.blockedUntil = now.Add(r.blockTime)
		}
		r.mu.Unlock()

		if !allowed {
			r.reject(w, ip, r.blockTime)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// sweep drops idle clients at most once per idleTTL. An evicted client comes
// back with a full bucket, which it would have regained by then anyway.
// Callers hold r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	for ip, client := range r.clients {
		if now.Sub(client.lastSeen) >= r.idleTTL {
			delete(r.clients, ip)
		}
	}
	r.lastSweep = now
}

func (r *RateLimiter) reject(w http.ResponseWriter, ip string, retryAfter time.Duration) {
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(ip))
}

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const (
	msgTooManyRequests = "слишком много запросов, попробуйте позже"

	visitorTTL = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничение частоты запросов по IP клиента
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu          sync.Mutex
	visitors    map[string]*visitor
	lastCleanup time.Time
	now         func() time.Time
}

// NewRateLimiter perMinute запросов в минуту с запасом burst
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(max(1, perMinute))),
		burst:    max(1, burst),
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Middleware отвечает 429, если клиент превысил лимит
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientKey(r)) {
				w.Header().Set("Retry-After", "60")
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) > visitorTTL {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastCleanup = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

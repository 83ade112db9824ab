package middlewares

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/exceptions"
	"valivio-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const loginLimiterSweepInterval = time.Minute

type loginVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimiter throttles login attempts per client IP. An IP that runs
// out of tokens is blocked for blockTime. Idle visitors are swept at most once
// per loginLimiterSweepInterval.
type LoginRateLimiter struct {
	log       *zap.Logger
	visitors  map[string]*loginVisitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	every     time.Duration
	burst     int
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewLoginRateLimiter(log *zap.Logger, attemptsPerMinute, burst int, blockTime time.Duration) *LoginRateLimiter {
	if attemptsPerMinute <= 0 {
		attemptsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	every := time.Minute / time.Duration(attemptsPerMinute)
	// a limiter untouched for every*burst is full again, so dropping it loses nothing
	idleTTL := every * time.Duration(burst)
	if idleTTL < blockTime {
		idleTTL = blockTime
	}
	return &LoginRateLimiter{
		log:       log,
		visitors:  make(map[string]*loginVisitor),
		blocked:   make(map[string]time.Time),
		every:     every,
		burst:     burst,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		now:       time.Now,
	}
}

func (m *Middlewares) LoginRateLimiter() *LoginRateLimiter {
	auth := m.InternalConfig.Auth
	return NewLoginRateLimiter(m.Log, auth.LoginAttemptsPerMinute, auth.LoginBurst, time.Duration(auth.LoginBlockMinutes)*time.Minute)
}

func (l *LoginRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.ClientIP(r)
		now := l.now()

		l.mu.Lock()
		l.sweep(now)
		if blockedUntil, found := l.blocked[ip]; found {
			if now.Before(blockedUntil) {
				l.mu.Unlock()
				l.reject(w, r, ip, blockedUntil.Sub(now))
				return
			}
			delete(l.blocked, ip)
			delete(l.visitors, ip)
		}

		visitor, exists := l.visitors[ip]
		if !exists {
			visitor = &loginVisitor{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
			l.visitors[ip] = visitor
		}
		visitor.lastSeen = now

		if !visitor.limiter.AllowN(now, 1) {
			l.blocked[ip] = now.Add(l.blockTime)
			l.mu.Unlock()
			l.reject(w, r, ip, l.blockTime)
			return
		}
		l.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// sweep drops idle visitors and expired blocks. Callers hold l.mu.
func (l *LoginRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < loginLimiterSweepInterval {
		return
	}
	l.lastSweep = now

	for ip, visitor := range l.visitors {
		if now.Sub(visitor.lastSeen) >= l.idleTTL {
			delete(l.visitors, ip)
		}
	}
	for ip, blockedUntil := range l.blocked {
		if !now.Before(blockedUntil) {
			delete(l.blocked, ip)
		}
	}
}

func (l *LoginRateLimiter) reject(w http.ResponseWriter, r *http.Request, ip string, retryAfter time.Duration) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	l.log.Warn("LoginRateLimiter.Limit blocked login attempt",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRemoteAddrKey, ip),
	)
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyLoginAttempts(nil))
}

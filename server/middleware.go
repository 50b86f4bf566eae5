package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"crawl-server/dao/redis"
	"crawl-server/logger"
	"crawl-server/server/handlers"
	services "crawl-server/service"
)

const REQUEST_ID_HEADER = "X-Request-ID"
const FORWARDED_FOR_HEADER = "X-Forwarded-For"
const RATE_LIMIT_REMAINING_HEADER = "X-RateLimit-Remaining"

// RateLimiter counts one request for a client against its quota.
type RateLimiter interface {
	Hit(ctx context.Context, clientID string) (redis.Decision, error)
}

// Middleware holds the cross-cutting request handlers of the server.
type Middleware struct {
	upstreamAvailable bool
	allowedOrigin     string
	trustedProxies    []string
	rateLimiter       RateLimiter
}

// NewMiddleware builds the middleware set. rateLimiter may be nil, which
// disables rate limiting. X-Forwarded-For is only read from peers listed in
// trustedProxies.
func NewMiddleware(upstreamAvailable bool, allowedOrigin string, trustedProxies []string, rateLimiter RateLimiter) *Middleware {
	return &Middleware{
		upstreamAvailable: upstreamAvailable,
		allowedOrigin:     allowedOrigin,
		trustedProxies:    trustedProxies,
		rateLimiter:       rateLimiter,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestID tags each request with an identifier and writes an access log line.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(REQUEST_ID_HEADER, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// CORS sets the allowed origin and answers preflight requests.
func (m *Middleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+REQUEST_ID_HEADER)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CredentialGuard rejects upstream-dependent requests when no credential is configured.
func (m *Middleware) CredentialGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.upstreamAvailable {
			handlers.WriteError(w, http.StatusServiceUnavailable, services.ErrNotConfigured.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit enforces the per-client request quota. Counter failures let the
// request through.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		client := m.clientIP(r)
		decision, err := m.rateLimiter.Hit(r.Context(), client)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.String("client", client), zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set(RATE_LIMIT_REMAINING_HEADER, strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Round(time.Second) / time.Second)
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			handlers.WriteError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the peer address, or the first X-Forwarded-For entry when the
// peer is a trusted proxy.
func (m *Middleware) clientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !funk.ContainsString(m.trustedProxies, peer) {
		return peer
	}
	if forwarded := strings.TrimSpace(strings.Split(r.Header.Get(FORWARDED_FOR_HEADER), ",")[0]); forwarded != "" {
		return forwarded
	}
	return peer
}

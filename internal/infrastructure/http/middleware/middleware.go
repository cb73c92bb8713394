// Package middleware provides chi-compatible HTTP middleware for the API server
package middleware

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/pkg/errors"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// compressibleTypes are the content types the compressor will encode
var compressibleTypes = []string{
	"application/json",
	"text/plain",
	"text/html",
}

// Middleware provides all middleware functions
type Middleware struct {
	config   *config.Config
	logger   *zap.Logger
	limiters *ipLimiters
}

// New creates a new middleware instance
func New(cfg *config.Config, logger *zap.Logger) *Middleware {
	return &Middleware{
		config: cfg,
		logger: logger.Named("http"),
		limiters: newIPLimiters(
			rate.Limit(cfg.RateLimit.RequestsPerSecond),
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
		),
	}
}

// RequestID assigns a request id, honouring an incoming X-Request-Id, and echoes it in the response
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(chimw.RequestIDHeader, chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	}))
}

// Logger provides structured logging for requests
func (m *Middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if path == m.config.Monitoring.HealthCheckPath {
			return
		}
		if r.URL.RawQuery != "" {
			path = path + "?" + r.URL.RawQuery
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []zap.Field{
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", path),
			zap.String("ip", clientIP(r)),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", r.UserAgent()),
		}
		if userID, ok := UserIDFromContext(r.Context()); ok {
			fields = append(fields, zap.String("user_id", userID.String()))
		}

		switch {
		case status >= 500:
			m.logger.Error("Server error", fields...)
		case status >= 400:
			m.logger.Warn("Client error", fields...)
		default:
			m.logger.Info("Request completed", fields...)
		}
	})
}

// Recovery recovers from panics and returns a 500 error
func (m *Middleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.logger.Error("Panic recovered",
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.Any("error", rec),
					zap.String("stack", string(debug.Stack())),
				)
				WriteError(w, r, errors.NewInternalError("An unexpected error occurred"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// CORS handles Cross-Origin Resource Sharing
func (m *Middleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.config.Server.EnableCORS {
			next.ServeHTTP(w, r)
			return
		}

		origin := r.Header.Get("Origin")
		if origin != "" && m.isOriginAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimit applies a token bucket per client IP
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.config.RateLimit.Enable {
			next.ServeHTTP(w, r)
			return
		}

		if !m.limiters.allow(clientIP(r), time.Now()) {
			retryAfter := 1
			if rps := m.config.RateLimit.RequestsPerSecond; rps > 0 && rps < 1 {
				retryAfter = int(1/rps) + 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			WriteError(w, r, errors.NewTooManyRequestsError())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Security adds security headers for API responses
func (m *Middleware) Security(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		if m.config.IsProduction() {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}

// Compression encodes responses with brotli when the client accepts it, falling back to gzip and deflate
func (m *Middleware) Compression(level int) func(http.Handler) http.Handler {
	compressor := chimw.NewCompressor(level, compressibleTypes...)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, brotliLevel(level))
	})
	return compressor.Handler
}

// brotliLevel maps the gzip-style 1..9 scale onto brotli's 0..11
func brotliLevel(level int) int {
	switch {
	case level <= 0:
		return brotli.DefaultCompression
	case level >= 9:
		return brotli.BestCompression
	default:
		return level
	}
}

func (m *Middleware) isOriginAllowed(origin string) bool {
	if m.config.IsDevelopment() && len(m.config.Server.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range m.config.Server.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// errorResponse mirrors the handlers' APIResponse envelope for failures
type errorResponse struct {
	Success bool                `json:"success"`
	Error   errors.ErrorDetails `json:"error"`
}

// WriteError renders an AppError with its mapped status code
func WriteError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	_ = json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error:   errors.ToErrorDetails(appErr, chimw.GetReqID(r.Context())),
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters keeps one limiter per client, evicting idle ones on the cleanup interval
type ipLimiters struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	idle        time.Duration
	lastCleanup time.Time
}

func newIPLimiters(limit rate.Limit, burst int, idle time.Duration) *ipLimiters {
	if burst <= 0 {
		burst = 1
	}
	if idle <= 0 {
		idle = time.Minute
	}
	return &ipLimiters{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		idle:     idle,
	}
}

func (l *ipLimiters) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastCleanup) >= l.idle {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.idle {
				delete(l.visitors, key)
			}
		}
		l.lastCleanup = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

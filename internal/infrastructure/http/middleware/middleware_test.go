package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/memory"
	"github.com/culinaryos/kitchen/internal/infrastructure/security"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "test"},
		Server: config.ServerConfig{
			EnableCORS:     true,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		RateLimit: config.RateLimitConfig{
			Enable:            true,
			RequestsPerSecond: 1,
			BurstSize:         2,
			CleanupInterval:   time.Minute,
		},
		Monitoring: config.MonitoringConfig{HealthCheckPath: "/health"},
	}
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"success":true}`))
})

func decodeError(t *testing.T, body io.Reader) errors.ErrorDetails {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	assert.False(t, resp.Success)
	return resp.Error
}

func TestRateLimitPerClient(t *testing.T) {
	m := New(testConfig(), zap.NewNop())
	handler := m.RateLimit(okHandler)

	send := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:4000").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:4001").Code)

	limited := send("10.0.0.1:4002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Equal(t, errors.CodeTooManyRequests, decodeError(t, limited.Body).Code)

	assert.Equal(t, http.StatusOK, send("10.0.0.2:4000").Code, "other clients keep their own bucket")
}

func TestRateLimitDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enable = false
	handler := New(cfg, zap.NewNop()).RateLimit(okHandler)

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestIPLimitersEvictIdleClients(t *testing.T) {
	limiters := newIPLimiters(1, 1, time.Minute)
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiters.allow("a", start))
	assert.True(t, limiters.allow("b", start.Add(59*time.Second)))
	assert.Len(t, limiters.visitors, 2)

	assert.True(t, limiters.allow("b", start.Add(2*time.Minute)))
	assert.Len(t, limiters.visitors, 1)
	assert.Contains(t, limiters.visitors, "b")
}

func TestCORS(t *testing.T) {
	handler := New(testConfig(), zap.NewNop()).CORS(okHandler)

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/pantry", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})
}

func TestRecovery(t *testing.T) {
	handler := New(testConfig(), zap.NewNop()).Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errors.CodeInternal, decodeError(t, rec.Body).Code)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	New(testConfig(), zap.NewNop()).Security(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestCompressionPrefersBrotli(t *testing.T) {
	payload := `{"items":"` + strings.Repeat("garlic ", 200) + `"}`
	handler := New(testConfig(), zap.NewNop()).Compression(5)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	req.Header.Set("Accept-Encoding", "gzip, br")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "br", rec.Header().Get("Content-Encoding"))
	decoded, err := io.ReadAll(brotli.NewReader(rec.Body))
	require.NoError(t, err)
	assert.Equal(t, payload, string(decoded))
}

func TestAuthenticate(t *testing.T) {
	cache := memory.NewCacheRepository(time.Hour)
	defer cache.Close()
	tokens := security.NewTokenService(config.AuthConfig{
		JWTSecret:     "middleware-test-secret-with-32-bytes!",
		JWTExpiration: time.Hour,
	}, cache, zap.NewNop())

	userID := uuid.New()
	token, err := tokens.Issue(userID, "chef@example.com")
	require.NoError(t, err)

	var seen uuid.UUID
	var seenToken string
	handler := Authenticate(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		seenToken, _ = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/pantry", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("ValidToken", func(t *testing.T) {
		rec := send("Bearer " + token)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, seen)
		assert.Equal(t, token, seenToken)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		rec := send("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errors.CodeUnauthorized, decodeError(t, rec.Body).Code)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, send("Basic abc").Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, send("Bearer not.a.jwt").Code)
	})

	t.Run("RevokedToken", func(t *testing.T) {
		require.NoError(t, tokens.Revoke(context.Background(), token))
		assert.Equal(t, http.StatusUnauthorized, send("Bearer "+token).Code)
	})
}

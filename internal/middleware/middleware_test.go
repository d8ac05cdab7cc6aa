package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/user"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (mockLogger) Panic(ctx context.Context, args ...any)                 {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any) {}

type mockDirectory struct {
	getByIDFunc      func(ctx context.Context, id string) (model.User, error)
	authenticateFunc func(ctx context.Context, apiKey string) (model.User, error)
}

func (m *mockDirectory) GetByID(ctx context.Context, id string) (model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return model.User{}, user.ErrNotFound
}

func (m *mockDirectory) Authenticate(ctx context.Context, apiKey string) (model.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, apiKey)
	}
	return model.User{}, user.ErrInvalidAPIKey
}

func newTestRouter(mw Middleware) (*gin.Engine, *model.Scope) {
	gin.SetMode(gin.TestMode)
	var captured model.Scope

	r := gin.New()
	r.GET("/protected", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc, _ := ScopeFromContext(c)
		captured = sc
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuth(t *testing.T) {
	directory := &mockDirectory{
		authenticateFunc: func(ctx context.Context, apiKey string) (model.User, error) {
			if apiKey == "valid-key" {
				return model.User{ID: "user-1", Email: "alice@example.com"}, nil
			}
			return model.User{}, user.ErrInvalidAPIKey
		},
	}

	t.Run("Valid Key Sets Scope", func(t *testing.T) {
		mw := New(mockLogger{}, directory, Config{RateLimitPerMin: 600})
		r, captured := newTestRouter(mw)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(APIKeyHeader, "valid-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.UserID != "user-1" || captured.Email != "alice@example.com" {
			t.Errorf("unexpected scope: %+v", *captured)
		}
	})

	t.Run("Invalid Key Rejected", func(t *testing.T) {
		mw := New(mockLogger{}, directory, Config{RateLimitPerMin: 600})
		r, _ := newTestRouter(mw)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(APIKeyHeader, "wrong-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Missing Key Rejected", func(t *testing.T) {
		mw := New(mockLogger{}, directory, Config{RateLimitPerMin: 600})
		r, _ := newTestRouter(mw)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("Directory Error Rejected", func(t *testing.T) {
		failing := &mockDirectory{
			authenticateFunc: func(ctx context.Context, apiKey string) (model.User, error) {
				return model.User{}, errors.New("db down")
			},
		}
		mw := New(mockLogger{}, failing, Config{RateLimitPerMin: 600})
		r, _ := newTestRouter(mw)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(APIKeyHeader, "valid-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	directory := &mockDirectory{
		authenticateFunc: func(ctx context.Context, apiKey string) (model.User, error) {
			return model.User{ID: "user-" + apiKey, Email: apiKey + "@example.com"}, nil
		},
	}

	t.Run("Burst Exhaustion Returns 429", func(t *testing.T) {
		// 60 req/min gives a burst of 6; the 7th immediate request
		// must be rejected.
		mw := New(mockLogger{}, directory, Config{RateLimitPerMin: 60})
		r, _ := newTestRouter(mw)

		var lastCode int
		for i := 0; i < 7; i++ {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set(APIKeyHeader, "a")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			lastCode = w.Code
			if i < 6 && w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}
		if lastCode != http.StatusTooManyRequests {
			t.Fatalf("expected 429 after burst, got %d", lastCode)
		}
	})

	t.Run("Limits Are Per User", func(t *testing.T) {
		mw := New(mockLogger{}, directory, Config{RateLimitPerMin: 60})
		r, _ := newTestRouter(mw)

		for i := 0; i < 7; i++ {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set(APIKeyHeader, "a")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(APIKeyHeader, "b")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected user b unaffected, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	mw := New(mockLogger{}, &mockDirectory{}, Config{RateLimitPerMin: 600})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Generates When Absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get(requestIDHeader) == "" {
			t.Error("expected a generated request id on the response")
		}
	})

	t.Run("Echoes When Present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(requestIDHeader); got != "req-123" {
			t.Errorf("expected req-123 echoed, got %q", got)
		}
	})
}

// ABOUTME: Tests for router construction and middleware wiring
// ABOUTME: Verifies route registration, logging, and rate limit integration

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

type stubHandler struct {
	registered bool
}

func (s *stubHandler) RegisterRoutes(r chi.Router) {
	s.registered = true
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, fields map[string]interface{}) {}
func (noopLogger) Info(msg string, fields map[string]interface{})  {}
func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

func TestNewRouter_RegistersHandlers(t *testing.T) {
	h := &stubHandler{}
	router := NewRouter(APIConfig{Logger: noopLogger{}}, h)

	if !h.registered {
		t.Fatal("handler routes were not registered")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from registered route, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected logging middleware to set X-Request-ID")
	}
}

func TestNewRouter_UnknownRoute404(t *testing.T) {
	router := NewRouter(APIConfig{}, &stubHandler{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimitApplied(t *testing.T) {
	router := NewRouter(APIConfig{RateLimit: 1, RateWindow: time.Minute}, &stubHandler{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.30:4000"

	first := httptest.NewRecorder()
	router.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 on second request, got %d", second.Code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"activity-viewer-api/core/domain"
)

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, msg)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record(msg) }

func TestRequestLoggingMiddleware_SetsRequestID(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
	if len(logger.entries) == 0 {
		t.Error("no log entries recorded")
	}
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	found := false
	for _, msg := range logger.entries {
		if msg == "Request failed with server error" {
			found = true
		}
	}
	if !found {
		t.Error("server error was not logged")
	}
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	var got domain.Principal
	var ok bool
	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = domain.PrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	req.Header.Set("X-Upstream-Username", "alice")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("principal not found in context")
	}
	if got.Token != "tok-123" {
		t.Errorf("token = %q", got.Token)
	}
	if got.Username != "alice" {
		t.Errorf("username = %q", got.Username)
	}
}

func TestAuthMiddleware_AuthSubToken(t *testing.T) {
	var got domain.Principal
	var ok bool
	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = domain.PrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "AuthSub token=legacy-tok")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("principal not found in context")
	}
	if got.Token != "legacy-tok" {
		t.Errorf("token = %q", got.Token)
	}
}

func TestAuthMiddleware_NoTokenPassesThrough(t *testing.T) {
	var ok bool
	var status int
	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = domain.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))
	status = rec.Code

	if ok {
		t.Error("unexpected principal in context")
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, unauthenticated requests should pass through", status)
	}
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(100)
	defer rl.Stop()

	if !rl.Allow("1.2.3.4") {
		t.Error("first request should be allowed")
	}
}

func TestRateLimiter_BlocksBurstOverflow(t *testing.T) {
	rl := NewRateLimiter(2)
	defer rl.Stop()

	rl.Allow("1.2.3.4")
	rl.Allow("1.2.3.4")
	if rl.Allow("1.2.3.4") {
		t.Error("third immediate request should exceed the burst")
	}

	// A different client has its own bucket
	if !rl.Allow("5.6.7.8") {
		t.Error("distinct client should not be affected")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	rl := NewRateLimiter(1)
	defer rl.Stop()

	handler := RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Errorf("first request status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestRateLimitMiddleware_NilLimiterDisables(t *testing.T) {
	handler := RateLimitMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := extractIP(req); got != "10.0.0.1:1234" {
		t.Errorf("extractIP = %q", got)
	}

	req.Header.Set("X-Real-IP", "2.2.2.2")
	if got := extractIP(req); got != "2.2.2.2" {
		t.Errorf("extractIP with X-Real-IP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 3.3.3.3")
	if got := extractIP(req); got != "3.3.3.3" {
		t.Errorf("extractIP with X-Forwarded-For = %q", got)
	}
}

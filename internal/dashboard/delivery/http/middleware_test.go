package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func TestRequestIDMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware())

	var seen string
	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if seen == "" {
		t.Error("no request ID minted for the handler")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("response ID %q != handler ID %q", got, seen)
	}

	// A caller-supplied ID is kept.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "trace-me")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if seen != "trace-me" {
		t.Errorf("request ID = %q, want trace-me", seen)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(SecurityHeadersMiddleware())
	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware())
	router.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestClientIdentifier(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/inventory", nil)
	req.RemoteAddr = "10.0.0.9:54321"
	if got := clientIdentifier(req); got != "10.0.0.9" {
		t.Errorf("clientIdentifier() = %q, want the bare IP", got)
	}

	req.Header.Set(SessionHeader, "abc123")
	if got := clientIdentifier(req); got != "session:abc123" {
		t.Errorf("clientIdentifier() = %q, want the session key", got)
	}
}

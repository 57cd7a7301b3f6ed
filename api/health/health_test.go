package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lugx_gaming_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func TestHealth(t *testing.T) {
	r := chi.NewRouter()
	NewHealthRoutesManager(gecho.NewDefaultLogger(), nil, nil).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}

	var body structs.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !body.Success || body.Status != "healthy" {
		t.Errorf("unexpected body: %+v", body)
	}
	if time.Since(body.Timestamp) > time.Minute {
		t.Errorf("stale timestamp: %v", body.Timestamp)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := chi.NewRouter()
	NewHealthRoutesManager(gecho.NewDefaultLogger(), nil, nil).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "application/json" {
		t.Errorf("metrics should use text exposition, got %q", ct)
	}
}

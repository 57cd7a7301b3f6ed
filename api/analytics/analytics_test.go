package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lugx_gaming_server/structs"
	"lugx_gaming_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type stubAnalyticsService struct {
	tracked  *tables.AnalyticsEvent
	trackErr error
	events   []tables.AnalyticsEvent
	listErr  error
	start    *time.Time
	end      *time.Time
}

func (s *stubAnalyticsService) TrackEvent(ctx context.Context, event *tables.AnalyticsEvent) error {
	s.tracked = event
	return s.trackErr
}

func (s *stubAnalyticsService) ListEvents(ctx context.Context, start, end *time.Time) ([]tables.AnalyticsEvent, error) {
	s.start, s.end = start, end
	return s.events, s.listErr
}

func newTestRouter(svc *stubAnalyticsService) chi.Router {
	r := chi.NewRouter()
	NewAnalyticsRoutesManager(gecho.NewDefaultLogger(), svc).RegisterRoutes(r)
	return r
}

func TestTrackPageView(t *testing.T) {
	t.Run("tracks a page view and returns the event id", func(t *testing.T) {
		svc := &stubAnalyticsService{}
		r := newTestRouter(svc)

		req := httptest.NewRequest("POST", "/track/pageview",
			strings.NewReader(`{"userId":"u1","sessionId":"s1","pageUrl":"/shop","pageTitle":"Shop"}`))
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone) Mobile/15E148")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
		}

		var body structs.TrackResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.Message != "Page view tracked successfully" {
			t.Errorf("got message %q", body.Message)
		}
		if _, err := uuid.Parse(body.EventID); err != nil {
			t.Errorf("eventId %q is not a UUID", body.EventID)
		}

		if svc.tracked == nil {
			t.Fatal("no event reached the service")
		}
		if svc.tracked.EventType != tables.EventTypePageView {
			t.Errorf("got event type %q", svc.tracked.EventType)
		}
		if svc.tracked.IPAddress != "203.0.113.7" {
			t.Errorf("got ip %q", svc.tracked.IPAddress)
		}
		if svc.tracked.DeviceType != "mobile" {
			t.Errorf("got device type %q", svc.tracked.DeviceType)
		}
	})

	t.Run("missing pageUrl answers 400", func(t *testing.T) {
		svc := &stubAnalyticsService{}
		r := newTestRouter(svc)

		req := httptest.NewRequest("POST", "/track/pageview", strings.NewReader(`{"userId":"u1"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", rec.Code)
		}
		if svc.tracked != nil {
			t.Error("invalid event reached the service")
		}

		var body structs.ErrorResponse
		json.Unmarshal(rec.Body.Bytes(), &body)
		if body.Error != "pageUrl is required" {
			t.Errorf("got error %q", body.Error)
		}
	})
}

func TestTrackClick(t *testing.T) {
	t.Run("tracks a click", func(t *testing.T) {
		svc := &stubAnalyticsService{}
		r := newTestRouter(svc)

		req := httptest.NewRequest("POST", "/track/click",
			strings.NewReader(`{"elementId":"buy-button","elementText":"Buy now","pageUrl":"/shop"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
		}

		var body structs.TrackResponse
		json.Unmarshal(rec.Body.Bytes(), &body)
		if body.Message != "Click event tracked successfully" {
			t.Errorf("got message %q", body.Message)
		}
		if svc.tracked == nil || svc.tracked.EventType != tables.EventTypeClick {
			t.Errorf("unexpected event: %+v", svc.tracked)
		}
		if svc.tracked.ElementID != "buy-button" {
			t.Errorf("got element id %q", svc.tracked.ElementID)
		}
	})

	t.Run("missing elementId answers 400", func(t *testing.T) {
		r := newTestRouter(&stubAnalyticsService{})

		req := httptest.NewRequest("POST", "/track/click", strings.NewReader(`{"pageUrl":"/shop"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", rec.Code)
		}

		var body structs.ErrorResponse
		json.Unmarshal(rec.Body.Bytes(), &body)
		if body.Error != "elementId is required" {
			t.Errorf("got error %q", body.Error)
		}
	})

	t.Run("storage failure answers 500", func(t *testing.T) {
		svc := &stubAnalyticsService{trackErr: errors.New("pg: write failed")}
		r := newTestRouter(svc)

		req := httptest.NewRequest("POST", "/track/click", strings.NewReader(`{"elementId":"x"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("got status %d", rec.Code)
		}
	})
}

func TestListEvents(t *testing.T) {
	t.Run("passes parsed date bounds to the service", func(t *testing.T) {
		svc := &stubAnalyticsService{events: []tables.AnalyticsEvent{}}
		r := newTestRouter(svc)

		req := httptest.NewRequest("GET",
			"/analytics?startDate=2026-08-01T00:00:00Z&endDate=2026-08-28T00:00:00Z", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("got status %d", rec.Code)
		}
		if svc.start == nil || svc.end == nil {
			t.Fatal("date bounds were not forwarded")
		}
		if svc.start.Day() != 1 || svc.end.Day() != 28 {
			t.Errorf("unexpected bounds: %v, %v", svc.start, svc.end)
		}
	})

	t.Run("invalid startDate answers 400", func(t *testing.T) {
		r := newTestRouter(&stubAnalyticsService{})

		req := httptest.NewRequest("GET", "/analytics?startDate=yesterday", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("got status %d", rec.Code)
		}
	})

	t.Run("empty result serializes as an array", func(t *testing.T) {
		svc := &stubAnalyticsService{events: []tables.AnalyticsEvent{}}
		r := newTestRouter(svc)

		req := httptest.NewRequest("GET", "/analytics", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if !strings.Contains(rec.Body.String(), `"events":[]`) {
			t.Errorf("expected empty array, got %s", rec.Body.String())
		}
	})
}

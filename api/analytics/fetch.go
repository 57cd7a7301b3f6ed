package analytics

import (
	"net/http"
	"time"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
)

// ListEvents serves dashboard queries, optionally bounded by RFC3339
// startDate/endDate query params.
func (m *AnalyticsRoutesManager) ListEvents(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "Invalid startDate, expected RFC3339"})
			return
		}
		start = &t
	}

	if raw := r.URL.Query().Get("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "Invalid endDate, expected RFC3339"})
			return
		}
		end = &t
	}

	events, err := m.analyticsService.ListEvents(r.Context(), start, end)
	if err != nil {
		handling.HandleError(err, "Failed to list analytics events", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.EventListResponse{
		Success: true,
		Events:  events,
	})
}

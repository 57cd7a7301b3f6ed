package analytics

import (
	"errors"
	"net/http"
	"time"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
	"lugx_gaming_server/structs/tables"

	"github.com/google/uuid"
)

func (m *AnalyticsRoutesManager) TrackPageView(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.PageViewRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			// Fixed wording the storefront tracker matches on.
			lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "pageUrl is required"})
			return
		}
		lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "Invalid request body"})
		return
	}

	event := &tables.AnalyticsEvent{
		ID:         uuid.New(),
		EventType:  tables.EventTypePageView,
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		PageURL:    req.PageURL,
		PageTitle:  req.PageTitle,
		Referrer:   req.Referrer,
		IPAddress:  lib.ClientIP(r),
		UserAgent:  r.UserAgent(),
		DeviceType: lib.DeviceType(r.UserAgent()),
		OccurredAt: time.Now().UTC(),
	}

	if err := m.analyticsService.TrackEvent(r.Context(), event); err != nil {
		handling.HandleError(err, "Failed to track page view", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.TrackResponse{
		Success: true,
		Message: "Page view tracked successfully",
		EventID: event.ID.String(),
	})
}

func (m *AnalyticsRoutesManager) TrackClick(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.ClickRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "elementId is required"})
			return
		}
		lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: "Invalid request body"})
		return
	}

	event := &tables.AnalyticsEvent{
		ID:          uuid.New(),
		EventType:   tables.EventTypeClick,
		UserID:      req.UserID,
		SessionID:   req.SessionID,
		PageURL:     req.PageURL,
		ElementID:   req.ElementID,
		ElementText: req.ElementText,
		IPAddress:   lib.ClientIP(r),
		UserAgent:   r.UserAgent(),
		DeviceType:  lib.DeviceType(r.UserAgent()),
		OccurredAt:  time.Now().UTC(),
	}

	if err := m.analyticsService.TrackEvent(r.Context(), event); err != nil {
		handling.HandleError(err, "Failed to track click event", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.TrackResponse{
		Success: true,
		Message: "Click event tracked successfully",
		EventID: event.ID.String(),
	})
}

package analytics

import (
	"lugx_gaming_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AnalyticsRoutesManager struct {
	logger           *gecho.Logger
	analyticsService services.AnalyticsService
}

func NewAnalyticsRoutesManager(logger *gecho.Logger, analyticsService services.AnalyticsService) *AnalyticsRoutesManager {
	return &AnalyticsRoutesManager{
		logger:           logger,
		analyticsService: analyticsService,
	}
}

// Tracking endpoints stay open: they are called from browsers that never
// hold the API key.
func (m *AnalyticsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/track/pageview", m.TrackPageView)
	r.Post("/track/click", m.TrackClick)
	r.Get("/analytics", m.ListEvents)
}

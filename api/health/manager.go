package health

import (
	"net/http"

	"lugx_gaming_server/observability"
	"lugx_gaming_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type HealthRoutesManager struct {
	logger        *gecho.Logger
	healthService *services.HealthService
	cacheService  *services.CacheService
}

func NewHealthRoutesManager(logger *gecho.Logger, healthService *services.HealthService, cacheService *services.CacheService) *HealthRoutesManager {
	return &HealthRoutesManager{
		logger:        logger,
		healthService: healthService,
		cacheService:  cacheService,
	}
}

// Health and metrics stay open so load balancers and the scraper can reach
// them without the API key.
func (m *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/health", m.Health)
	r.Get("/health/database", m.DatabaseHealth)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		observability.Handler().ServeHTTP(w, req)
	})
}

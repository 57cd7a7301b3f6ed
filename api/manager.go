package api

import (
	"lugx_gaming_server/api/analytics"
	"lugx_gaming_server/api/games"
	"lugx_gaming_server/api/health"
	"lugx_gaming_server/api/orders"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	orderRoutes     *orders.OrderRoutesManager
	gameRoutes      *games.GameRoutesManager
	analyticsRoutes *analytics.AnalyticsRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(
	orderRoutes *orders.OrderRoutesManager,
	gameRoutes *games.GameRoutesManager,
	analyticsRoutes *analytics.AnalyticsRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		orderRoutes:     orderRoutes,
		gameRoutes:      gameRoutes,
		analyticsRoutes: analyticsRoutes,
		healthRoutes:    healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.orderRoutes.RegisterRoutes(r)
	rm.gameRoutes.RegisterRoutes(r)
	rm.analyticsRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}

package api

import (
	"net/http"

	"lugx_gaming_server/api/analytics"
	"lugx_gaming_server/api/games"
	"lugx_gaming_server/api/health"
	"lugx_gaming_server/api/middleware"
	"lugx_gaming_server/api/orders"
	"lugx_gaming_server/config"
	"lugx_gaming_server/database"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/services"
	"lugx_gaming_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App() chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// db
	db := database.GetInstance()

	// config
	cfg := config.GetConfig()

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Observability. Metrics wraps everything so even 404s are counted.
	r.Use(middleware.Metrics)
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)

	// Services
	sm := services.NewServiceManager(standardLogger, cfg, db)

	// Register all routes
	NewRouterManager(
		orders.NewOrderRoutesManager(standardLogger, sm.OrderService, mw),
		games.NewGameRoutesManager(standardLogger, sm.GameService, mw),
		analytics.NewAnalyticsRoutesManager(standardLogger, sm.AnalyticsService),
		health.NewHealthRoutesManager(standardLogger, sm.HealthService, sm.CacheService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		lib.WriteJSON(w, http.StatusOK, structs.ServiceInfoResponse{
			Success:        true,
			Message:        "LUGX Gaming API",
			Authentication: "API Key required",
			Version:        "1.0.0",
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		lib.WriteJSON(w, http.StatusNotFound, structs.ErrorResponse{Error: "Not found"})
	})

	return r
}

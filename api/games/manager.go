package games

import (
	"lugx_gaming_server/api/middleware"
	"lugx_gaming_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type GameRoutesManager struct {
	logger      *gecho.Logger
	gameService services.GameService
	mw          *middleware.Middleware
}

func NewGameRoutesManager(logger *gecho.Logger, gameService services.GameService, mw *middleware.Middleware) *GameRoutesManager {
	return &GameRoutesManager{
		logger:      logger,
		gameService: gameService,
		mw:          mw,
	}
}

func (m *GameRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(m.mw.RequireAPIKey)

		r.Get("/games", m.ListGames)
		r.Post("/games", m.CreateGame)
		r.Get("/games/{id}", m.GetGame)
		r.Get("/categories", m.ListCategories)
	})
}

package orders

import (
	"lugx_gaming_server/api/middleware"
	"lugx_gaming_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService services.OrderService, mw *middleware.Middleware) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (m *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(m.mw.RequireAPIKey)

		r.Post("/", m.CreateOrder)
		r.Get("/", m.ListOrders)
		r.Get("/{id}", m.GetOrder)
	})
}

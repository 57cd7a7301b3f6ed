package services

import (
	"lugx_gaming_server/database"
	"lugx_gaming_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	OrderService     OrderService
	GameService      GameService
	AnalyticsService AnalyticsService
	CacheService     *CacheService
	EmailService     *EmailService
	HealthService    *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db)
	orderService := NewOrderService(logger, cfg, db, emailService)
	gameService := NewGameService(logger, db, cacheService)
	analyticsService := NewAnalyticsService(logger, db)

	return &ServiceManager{
		OrderService:     orderService,
		GameService:      gameService,
		AnalyticsService: analyticsService,
		CacheService:     cacheService,
		EmailService:     emailService,
		HealthService:    healthService,
	}
}

package services

import (
	"time"

	"lugx_gaming_server/database"

	"github.com/MonkyMars/gecho"
)

type HealthService struct {
	logger    *gecho.Logger
	db        *database.DB
	startedAt time.Time
}

func NewHealthService(logger *gecho.Logger, db *database.DB) *HealthService {
	return &HealthService{
		logger:    logger,
		db:        db,
		startedAt: time.Now().UTC(),
	}
}

func (hs *HealthService) Uptime() time.Duration {
	return time.Since(hs.startedAt)
}

// CheckDatabase pings the storage backend.
func (hs *HealthService) CheckDatabase() error {
	if err := hs.db.Health(); err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
		return err
	}
	return nil
}

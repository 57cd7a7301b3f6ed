package services

import (
	"context"
	"time"

	"lugx_gaming_server/database"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// AnalyticsService ingests frontend events and serves date-range queries
// over them. Events are append-only.
type AnalyticsService interface {
	TrackEvent(ctx context.Context, event *tables.AnalyticsEvent) error
	ListEvents(ctx context.Context, start, end *time.Time) ([]tables.AnalyticsEvent, error)
}

type analyticsService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewAnalyticsService(logger *gecho.Logger, db *database.DB) AnalyticsService {
	return &analyticsService{
		logger: logger,
		db:     db,
	}
}

func (s *analyticsService) TrackEvent(ctx context.Context, event *tables.AnalyticsEvent) error {
	if _, err := s.db.NewInsert().Model(event).Exec(ctx); err != nil {
		return lib.MapPgError(err)
	}

	s.logger.Debug("Analytics event stored",
		gecho.Field("event_id", event.ID),
		gecho.Field("event_type", event.EventType))
	return nil
}

// ListEvents returns events newest first, optionally bounded by start/end.
// The result is capped; this endpoint feeds dashboards, not exports.
func (s *analyticsService) ListEvents(ctx context.Context, start, end *time.Time) ([]tables.AnalyticsEvent, error) {
	var events []tables.AnalyticsEvent

	err := database.WithRetry(ctx, func() error {
		events = nil // reset on retry
		q := s.db.NewSelect().Model(&events)
		if start != nil {
			q = q.Where("ae.occurred_at >= ?", *start)
		}
		if end != nil {
			q = q.Where("ae.occurred_at <= ?", *end)
		}
		return q.Order("ae.occurred_at DESC").Limit(1000).Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if events == nil {
		events = []tables.AnalyticsEvent{}
	}
	return events, nil
}

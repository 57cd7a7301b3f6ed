package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AnalyticsEvent is a single tracked frontend event (pageview or click).
// Events are append-only; there is no update or delete path.
type AnalyticsEvent struct {
	bun.BaseModel `bun:"table:analytics_events,alias:ae"`

	ID          uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	EventType   string    `bun:"event_type,notnull" json:"eventType"`
	UserID      string    `bun:"user_id,notnull" json:"userId"`
	SessionID   string    `bun:"session_id,notnull" json:"sessionId"`
	PageURL     string    `bun:"page_url" json:"pageUrl,omitempty"`
	PageTitle   string    `bun:"page_title" json:"pageTitle,omitempty"`
	Referrer    string    `bun:"referrer" json:"referrer,omitempty"`
	ElementID   string    `bun:"element_id" json:"elementId,omitempty"`
	ElementText string    `bun:"element_text" json:"elementText,omitempty"`
	IPAddress   string    `bun:"ip_address" json:"ipAddress,omitempty"`
	UserAgent   string    `bun:"user_agent" json:"userAgent,omitempty"`
	DeviceType  string    `bun:"device_type" json:"deviceType,omitempty"`
	OccurredAt  time.Time `bun:"occurred_at,notnull" json:"occurredAt"`
}

const (
	EventTypePageView = "pageview"
	EventTypeClick    = "click"
)

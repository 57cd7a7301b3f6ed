package structs

import (
	"time"

	"lugx_gaming_server/structs/tables"
)

// Wire envelopes. The shapes are fixed by the existing API consumers
// (frontend + external monitors), so they are spelled out as value structs
// instead of generic maps.

type ErrorResponse struct {
	Error string `json:"error"`
}

type OrderResponse struct {
	Success bool          `json:"success"`
	Order   *tables.Order `json:"order"`
	Message string        `json:"message,omitempty"`
}

type OrderListResponse struct {
	Success bool           `json:"success"`
	Orders  []tables.Order `json:"orders"`
}

type GameResponse struct {
	Success bool         `json:"success"`
	Game    *tables.Game `json:"game"`
	Message string       `json:"message,omitempty"`
}

type GameListResponse struct {
	Success bool          `json:"success"`
	Games   []tables.Game `json:"games"`
}

type CategoryListResponse struct {
	Success    bool                  `json:"success"`
	Categories []tables.GameCategory `json:"categories"`
}

type TrackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

type EventListResponse struct {
	Success bool                    `json:"success"`
	Events  []tables.AnalyticsEvent `json:"events"`
}

type ServiceInfoResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Authentication string `json:"authentication"`
	Version        string `json:"version"`
}

type HealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type DatabaseHealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
}

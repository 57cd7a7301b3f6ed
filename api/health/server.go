package health

import (
	"net/http"
	"time"

	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
)

// Health is a liveness probe; it answers as long as the process serves HTTP.
func (m *HealthRoutesManager) Health(w http.ResponseWriter, r *http.Request) {
	lib.WriteJSON(w, http.StatusOK, structs.HealthResponse{
		Success:   true,
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// DatabaseHealth pings the storage backend and reports the failure detail
// when the ping does not come back.
func (m *HealthRoutesManager) DatabaseHealth(w http.ResponseWriter, r *http.Request) {
	if err := m.healthService.CheckDatabase(); err != nil {
		lib.WriteJSON(w, http.StatusInternalServerError, structs.DatabaseHealthResponse{
			Success: false,
			Status:  "unhealthy",
			Detail:  err.Error(),
		})
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.DatabaseHealthResponse{
		Success: true,
		Status:  "healthy",
	})
}

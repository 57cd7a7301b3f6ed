package orders

import (
	"net/http"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
)

// ListOrders returns every committed order header, oldest first. Orders still
// inside an open transaction are never visible here.
func (m *OrderRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := m.orderService.ListOrders(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to list orders", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.OrderListResponse{
		Success: true,
		Orders:  orders,
	})
}

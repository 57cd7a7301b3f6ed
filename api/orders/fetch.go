package orders

import (
	"errors"
	"net/http"
	"strconv"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"

	"github.com/go-chi/chi/v5"
)

// GetOrder returns one order with its line items in submission order.
// A non-numeric id can never match an order, so it answers 404 rather than 400.
func (m *OrderRoutesManager) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		lib.WriteJSON(w, http.StatusNotFound, structs.ErrorResponse{Error: "Order not found"})
		return
	}

	order, err := m.orderService.GetOrderByID(r.Context(), id)
	if errors.Is(err, lib.ErrNotFound) {
		lib.WriteJSON(w, http.StatusNotFound, structs.ErrorResponse{Error: "Order not found"})
		return
	}
	if err != nil {
		handling.HandleError(err, "Failed to fetch order", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, structs.OrderResponse{
		Success: true,
		Order:   order,
	})
}

package orders

import (
	"errors"
	"net/http"

	"lugx_gaming_server/handling"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
)

// missingFieldsMessage is fixed wording the storefront frontend matches on.
const missingFieldsMessage = "Missing required fields: customerEmail, items"

// CreateOrder accepts an order request and persists it atomically. A payload
// that fails intake validation is rejected before any write happens.
func (m *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req, err := lib.DecodeBody[structs.OrderRequest](r)
	if err != nil {
		lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: missingFieldsMessage})
		return
	}

	order, err := m.orderService.CreateOrder(r.Context(), req)
	if errors.Is(err, lib.ErrMissingFields) {
		lib.WriteJSON(w, http.StatusBadRequest, structs.ErrorResponse{Error: missingFieldsMessage})
		return
	}
	if err != nil {
		handling.HandleError(err, "Failed to create order", m.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusCreated, structs.OrderResponse{
		Success: true,
		Order:   order,
		Message: "Order created successfully",
	})
}

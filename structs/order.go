package structs

import "lugx_gaming_server/lib"

// OrderRequest is the POST /orders payload. TotalAmount is optional and is
// stored as given; it is not reconciled against the line items.
type OrderRequest struct {
	CustomerEmail string             `json:"customerEmail"`
	CustomerName  string             `json:"customerName"`
	Items         []OrderItemRequest `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
}

type OrderItemRequest struct {
	GameID   int64   `json:"gameId"`
	GameName string  `json:"gameName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Validate applies the order intake rules, first failure wins:
// customerEmail must be non-empty and items must contain at least one
// element. Price sign, duplicate gameIds and totalAmount consistency are
// deliberately not checked.
func (r *OrderRequest) Validate() error {
	if r.CustomerEmail == "" {
		return lib.ErrMissingFields
	}
	if len(r.Items) == 0 {
		return lib.ErrMissingFields
	}
	return nil
}

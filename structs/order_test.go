package structs

import (
	"errors"
	"testing"

	"lugx_gaming_server/lib"
)

func TestOrderRequestValidate(t *testing.T) {
	t.Run("accepts a minimal valid request", func(t *testing.T) {
		req := &OrderRequest{
			CustomerEmail: "buyer@example.com",
			Items:         []OrderItemRequest{{GameID: 1, GameName: "Portal", Price: 9.99}},
		}
		if err := req.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects missing customerEmail", func(t *testing.T) {
		req := &OrderRequest{
			Items: []OrderItemRequest{{GameID: 1}},
		}
		if err := req.Validate(); !errors.Is(err, lib.ErrMissingFields) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("rejects empty items", func(t *testing.T) {
		req := &OrderRequest{CustomerEmail: "buyer@example.com"}
		if err := req.Validate(); !errors.Is(err, lib.ErrMissingFields) {
			t.Errorf("got %v", err)
		}

		req.Items = []OrderItemRequest{}
		if err := req.Validate(); !errors.Is(err, lib.ErrMissingFields) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("does not inspect prices or duplicates", func(t *testing.T) {
		// Negative prices, duplicate gameIds and a totalAmount that disagrees
		// with the items are all accepted as-is.
		req := &OrderRequest{
			CustomerEmail: "buyer@example.com",
			TotalAmount:   1,
			Items: []OrderItemRequest{
				{GameID: 7, GameName: "Refund", Price: -5},
				{GameID: 7, GameName: "Refund", Price: -5},
			},
		}
		if err := req.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lugx_gaming_server/database"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/structs"
	"lugx_gaming_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

// OrderService accepts validated order requests, persists the header and
// line items as one atomic unit, and reads committed orders back.
type OrderService interface {
	CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error)
	ListOrders(ctx context.Context) ([]tables.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*tables.Order, error)
}

type orderService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
	email  *EmailService
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, email *EmailService) OrderService {
	return &orderService{
		logger: logger,
		cfg:    cfg,
		db:     db,
		email:  email,
	}
}

// CreateOrder validates the request before touching storage, then writes
// header and items inside a single transaction. Two calls with the same
// payload produce two distinct orders; creation is not idempotent.
func (s *orderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (*tables.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order, err := s.createOrderTx(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		gecho.Field("order_id", order.ID),
		gecho.Field("items", len(order.Items)))

	go func() {
		if emailErr := s.email.SendOrderConfirmation(order); emailErr != nil {
			s.logger.Error("Failed to send order confirmation email",
				gecho.Field("error", emailErr),
				gecho.Field("order_id", order.ID))
		}
	}()

	return order, nil
}

// createOrderTx holds the transaction scope. The deferred block guarantees
// exactly one Commit or Rollback on every exit path, including panics.
func (s *orderService) createOrderTx(ctx context.Context, req *structs.OrderRequest) (order *tables.Order, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			s.logger.Error(fmt.Sprintf("panic in createOrderTx: %v", p))
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	order = &tables.Order{
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		TotalAmount:   req.TotalAmount,
		Status:        tables.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	// Header first: every item row needs the id assigned here.
	if _, err = tx.NewInsert().Model(order).Exec(ctx); err != nil {
		err = lib.MapPgError(err)
		return nil, err
	}

	items := make([]*tables.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		item := &tables.OrderItem{
			OrderID:  order.ID,
			GameID:   it.GameID,
			GameName: it.GameName,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		// One insert per item, in submitted order. No batching: a failure
		// anywhere rolls back the header and every row written so far.
		if _, err = tx.NewInsert().Model(item).Exec(ctx); err != nil {
			err = lib.MapPgError(err)
			return nil, err
		}
		items = append(items, item)
	}

	order.Items = items
	return order, nil
}

// ListOrders returns all committed order headers, oldest first.
func (s *orderService) ListOrders(ctx context.Context) ([]tables.Order, error) {
	var orders []tables.Order

	err := database.WithRetry(ctx, func() error {
		orders = nil // reset on retry
		return s.db.NewSelect().Model(&orders).Order("o.id ASC").Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if orders == nil {
		orders = []tables.Order{}
	}
	return orders, nil
}

// GetOrderByID returns one committed order with its line items in the order
// they were submitted.
func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*tables.Order, error) {
	order := new(tables.Order)

	err := s.db.NewSelect().
		Model(order).
		Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("id ASC")
		}).
		Where("o.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lib.ErrNotFound
	}
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return order, nil
}

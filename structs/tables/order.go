package tables

import (
	"time"

	"github.com/uptrace/bun"
)

// Order is the order header: one checkout, without its line items. The id is
// assigned by the database on commit and is immutable afterwards.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID            int64       `bun:"id,pk,autoincrement" json:"id"`
	CustomerEmail string      `bun:"customer_email,notnull" json:"customerEmail"`
	CustomerName  string      `bun:"customer_name" json:"customerName,omitempty"`
	TotalAmount   float64     `bun:"total_amount,notnull,default:0" json:"totalAmount"`
	Status        OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt     time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	Items []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

// OrderItem is one purchased catalog entry within an order. GameName and
// Price are snapshots taken at order time, not references into the catalog.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items,alias:oi"`

	ID       int64   `bun:"id,pk,autoincrement" json:"id"`
	OrderID  int64   `bun:"order_id,notnull" json:"orderId"`
	GameID   int64   `bun:"game_id,notnull" json:"gameId"`
	GameName string  `bun:"game_name" json:"gameName"`
	Price    float64 `bun:"price" json:"price"`
	Quantity int     `bun:"quantity,notnull,default:1" json:"quantity"`
}

type OrderStatus string

// Only pending is ever produced by order intake; the rest exist for
// downstream fulfilment tooling.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

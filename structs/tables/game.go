package tables

import (
	"time"

	"github.com/uptrace/bun"
)

type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Category    string    `bun:"category" json:"category,omitempty"`
	Price       float64   `bun:"price,notnull,default:0" json:"price"`
	Description string    `bun:"description" json:"description,omitempty"`
	ImageURL    string    `bun:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

type GameCategory struct {
	bun.BaseModel `bun:"table:game_categories,alias:gc"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,unique" json:"name"`
}

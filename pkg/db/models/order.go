package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a minimal placed-order record. Fulfillment state lives in a
// separate system; this row exists so user queries can filter on "has
// placed at least one order".
type Order struct {
	ID       uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID   uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:orders_user_id_idx"`
	Total    decimal.Decimal `gorm:"column:total;type:decimal(10,2);not null"`
	PlacedAt time.Time       `gorm:"column:placed_at;autoCreateTime"`
}

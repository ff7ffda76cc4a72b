package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a user to a saved product, unique per pair.
type WishlistItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:wishlist_items_user_id_idx;uniqueIndex:wishlist_items_user_product_key,priority:1"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index:wishlist_items_product_id_idx;uniqueIndex:wishlist_items_user_product_key,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductImage stores ordered gallery images. At most one row per
// product may carry IsMain; the products service maintains that inside a
// transaction.
type ProductImage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;index:product_images_product_id_idx"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	AltText   string    `gorm:"column:alt_text;not null;default:''"`
	IsMain    bool      `gorm:"column:is_main;not null"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

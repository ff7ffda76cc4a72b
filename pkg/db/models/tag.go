package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag labels products for search and merchandising; linked N-N through
// the product_tags join table.
type Tag struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:tags_name_key"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex:tags_slug_key"`
	Color     string    `gorm:"column:color;not null;default:'#007bff'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

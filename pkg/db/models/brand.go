package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a product manufacturer. Deleting a brand nulls the product
// reference rather than cascading.
type Brand struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:brands_name_key"`
	Slug        string    `gorm:"column:slug;not null;uniqueIndex:brands_slug_key"`
	Description string    `gorm:"column:description;not null;default:''"`
	LogoURL     *string   `gorm:"column:logo_url"`
	Website     string    `gorm:"column:website;not null;default:''"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	Featured    bool      `gorm:"column:featured;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the self-referential catalog tree. Deletion is
// restricted while products reference the category.
type Category struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string     `gorm:"column:name;not null;uniqueIndex:categories_name_key"`
	Slug        string     `gorm:"column:slug;not null;uniqueIndex:categories_slug_key"`
	Description string     `gorm:"column:description;not null;default:''"`
	ImageURL    *string    `gorm:"column:image_url"`
	ParentID    *uuid.UUID `gorm:"column:parent_id;type:uuid;index:categories_parent_id_idx"`

	MetaTitle       string `gorm:"column:meta_title;not null;default:''"`
	MetaDescription string `gorm:"column:meta_description;not null;default:''"`

	IsActive  bool `gorm:"column:is_active;not null"`
	Featured  bool `gorm:"column:featured;not null"`
	SortOrder int  `gorm:"column:sort_order;not null;default:0"`

	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

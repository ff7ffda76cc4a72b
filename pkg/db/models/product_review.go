package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductReview holds a rating and comment, one per (product, user).
// Only approved reviews count toward rating aggregates.
type ProductReview struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:product_reviews_product_user_key,priority:1"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:product_reviews_product_user_key,priority:2"`

	Rating  int    `gorm:"column:rating;not null"`
	Title   string `gorm:"column:title;not null"`
	Comment string `gorm:"column:comment;not null;default:''"`

	IsApproved         bool `gorm:"column:is_approved;not null"`
	IsVerifiedPurchase bool `gorm:"column:is_verified_purchase;not null"`
	HelpfulCount       int  `gorm:"column:helpful_count;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

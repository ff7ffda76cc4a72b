package models

import (
	"github.com/google/uuid"
)

// ProductAttribute names a product characteristic (e.g. "Material").
type ProductAttribute struct {
	ID   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"column:name;not null"`
	Slug string    `gorm:"column:slug;not null;uniqueIndex:product_attributes_slug_key"`
}

// ProductAttributeValue binds a value to a (product, attribute) pair,
// unique per pair.
type ProductAttributeValue struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID   uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:product_attribute_values_product_attribute_key,priority:1"`
	AttributeID uuid.UUID `gorm:"column:attribute_id;type:uuid;not null;uniqueIndex:product_attribute_values_product_attribute_key,priority:2"`
	Value       string    `gorm:"column:value;not null"`

	Attribute ProductAttribute `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

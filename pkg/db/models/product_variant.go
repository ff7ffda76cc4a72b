package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductVariant is an option-keyed purchasable flavor of a product
// (e.g. "Red - Large"). Price is an optional override of the parent.
type ProductVariant struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null;uniqueIndex:product_variants_product_name_key,priority:1"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:product_variants_product_name_key,priority:2"`
	SKU       string    `gorm:"column:sku;not null;uniqueIndex:product_variants_sku_key"`

	Price        *decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	ComparePrice *decimal.Decimal `gorm:"column:compare_price;type:decimal(10,2)"`

	StockQuantity int               `gorm:"column:stock_quantity;not null;default:0"`
	Options       datatypes.JSONMap `gorm:"column:options"`
	IsActive      bool              `gorm:"column:is_active;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice is the variant override when present, else the parent
// product price.
func (v ProductVariant) EffectivePrice(productPrice decimal.Decimal) decimal.Decimal {
	if v.Price != nil {
		return *v.Price
	}
	return productPrice
}

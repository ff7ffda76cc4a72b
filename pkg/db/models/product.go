package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// Product is the catalog aggregate root.
type Product struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name             string    `gorm:"column:name;not null"`
	Slug             string    `gorm:"column:slug;not null;uniqueIndex:products_slug_key"`
	SKU              string    `gorm:"column:sku;not null;uniqueIndex:products_sku_key"`
	Description      string    `gorm:"column:description;not null;default:''"`
	ShortDescription string    `gorm:"column:short_description;not null;default:''"`

	CategoryID uuid.UUID  `gorm:"column:category_id;type:uuid;not null;index:products_category_idx"`
	BrandID    *uuid.UUID `gorm:"column:brand_id;type:uuid;index:products_brand_idx"`

	Price        decimal.Decimal  `gorm:"column:price;type:decimal(10,2);not null"`
	ComparePrice *decimal.Decimal `gorm:"column:compare_price;type:decimal(10,2)"`
	CostPrice    *decimal.Decimal `gorm:"column:cost_price;type:decimal(10,2)"`

	StockQuantity   int               `gorm:"column:stock_quantity;not null;default:0"`
	StockStatus     enums.StockStatus `gorm:"column:stock_status;type:text;not null;default:'in_stock';index:products_stock_status_idx"`
	TrackInventory  bool              `gorm:"column:track_inventory;not null"`
	AllowBackorders bool              `gorm:"column:allow_backorders;not null"`

	Weight *decimal.Decimal `gorm:"column:weight;type:decimal(8,2)"`
	Length *decimal.Decimal `gorm:"column:length;type:decimal(8,2)"`
	Width  *decimal.Decimal `gorm:"column:width;type:decimal(8,2)"`
	Height *decimal.Decimal `gorm:"column:height;type:decimal(8,2)"`

	MetaTitle       string `gorm:"column:meta_title;not null;default:''"`
	MetaDescription string `gorm:"column:meta_description;not null;default:''"`

	IsActive         bool `gorm:"column:is_active;not null"`
	IsFeatured       bool `gorm:"column:is_featured;not null"`
	IsDigital        bool `gorm:"column:is_digital;not null"`
	RequiresShipping bool `gorm:"column:requires_shipping;not null"`

	Category Category `gorm:"foreignKey:CategoryID"`
	Brand    *Brand   `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
	Tags     []Tag    `gorm:"many2many:product_tags"`

	Images          []ProductImage          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants        []ProductVariant        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	AttributeValues []ProductAttributeValue `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews         []ProductReview         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// DiscountPercentage is the rounded percent saved against ComparePrice,
// or 0 when no positive markdown exists.
func (p Product) DiscountPercentage() int {
	if p.ComparePrice == nil || !p.ComparePrice.GreaterThan(p.Price) {
		return 0
	}
	pct := p.ComparePrice.Sub(p.Price).
		Div(*p.ComparePrice).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}

// InStock reports sellable availability: untracked inventory is always
// sellable, otherwise quantity or backorders must cover the sale.
func (p Product) InStock() bool {
	if !p.TrackInventory {
		return true
	}
	return p.StockQuantity > 0 || p.AllowBackorders
}

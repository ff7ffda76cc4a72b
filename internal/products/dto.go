package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
	"github.com/trendoralabs/trendora-backend/pkg/slug"
)

// ProductDTO is the transport shape for the catalog aggregate, carrying
// the derived pricing and review figures alongside the stored columns.
type ProductDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	SKU              string    `json:"sku"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`

	CategoryID uuid.UUID  `json:"category_id"`
	BrandID    *uuid.UUID `json:"brand_id,omitempty"`

	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`

	StockQuantity   int               `json:"stock_quantity"`
	StockStatus     enums.StockStatus `json:"stock_status"`
	TrackInventory  bool              `json:"track_inventory"`
	AllowBackorders bool              `json:"allow_backorders"`

	Weight *decimal.Decimal `json:"weight,omitempty"`
	Length *decimal.Decimal `json:"length,omitempty"`
	Width  *decimal.Decimal `json:"width,omitempty"`
	Height *decimal.Decimal `json:"height,omitempty"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	IsActive         bool `json:"is_active"`
	IsFeatured       bool `json:"is_featured"`
	IsDigital        bool `json:"is_digital"`
	RequiresShipping bool `json:"requires_shipping"`

	DiscountPercentage int     `json:"discount_percentage"`
	InStock            bool    `json:"in_stock"`
	AverageRating      float64 `json:"average_rating"`
	ReviewCount        int64   `json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductInput holds the data to insert a product. Slug is derived
// from Name when absent.
type CreateProductInput struct {
	Name             string `json:"name" validate:"required"`
	Slug             string `json:"slug"`
	SKU              string `json:"sku" validate:"required"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`

	CategoryID uuid.UUID  `json:"category_id" validate:"required"`
	BrandID    *uuid.UUID `json:"brand_id,omitempty"`

	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`

	StockQuantity   int                `json:"stock_quantity"`
	StockStatus     *enums.StockStatus `json:"stock_status,omitempty"`
	TrackInventory  *bool              `json:"track_inventory,omitempty"`
	AllowBackorders bool               `json:"allow_backorders"`

	Weight *decimal.Decimal `json:"weight,omitempty"`
	Length *decimal.Decimal `json:"length,omitempty"`
	Width  *decimal.Decimal `json:"width,omitempty"`
	Height *decimal.Decimal `json:"height,omitempty"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	IsActive         *bool `json:"is_active,omitempty"`
	IsFeatured       bool  `json:"is_featured"`
	IsDigital        bool  `json:"is_digital"`
	RequiresShipping *bool `json:"requires_shipping,omitempty"`
}

// UpdateProductInput carries partial product updates. Nil fields keep
// the stored value.
type UpdateProductInput struct {
	Name             *string `json:"name,omitempty"`
	Description      *string `json:"description,omitempty"`
	ShortDescription *string `json:"short_description,omitempty"`

	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	BrandID    *uuid.UUID `json:"brand_id,omitempty"`

	Price        *decimal.Decimal `json:"price,omitempty"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`

	StockQuantity   *int               `json:"stock_quantity,omitempty"`
	StockStatus     *enums.StockStatus `json:"stock_status,omitempty"`
	TrackInventory  *bool              `json:"track_inventory,omitempty"`
	AllowBackorders *bool              `json:"allow_backorders,omitempty"`

	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`

	IsActive   *bool `json:"is_active,omitempty"`
	IsFeatured *bool `json:"is_featured,omitempty"`
}

// ImageDTO is the transport shape for a gallery entry.
type ImageDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// AddImageInput carries the raw upload for one gallery entry.
type AddImageInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Data      []byte    `json:"-" validate:"required"`
	Filename  string    `json:"filename" validate:"required"`
	AltText   string    `json:"alt_text"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"sort_order"`
}

// VariantDTO is the transport shape for a purchasable flavor.
type VariantDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`

	Price          *decimal.Decimal `json:"price,omitempty"`
	ComparePrice   *decimal.Decimal `json:"compare_price,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`

	StockQuantity int            `json:"stock_quantity"`
	Options       map[string]any `json:"options,omitempty"`
	IsActive      bool           `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateVariantInput holds the data to insert a variant.
type CreateVariantInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	SKU       string    `json:"sku" validate:"required"`

	Price        *decimal.Decimal `json:"price,omitempty"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`

	StockQuantity int            `json:"stock_quantity"`
	Options       map[string]any `json:"options,omitempty"`
	IsActive      *bool          `json:"is_active,omitempty"`
}

// AttributeDTO is the transport shape for a named product characteristic.
type AttributeDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// AttributeValueDTO binds a value to a product's attribute.
type AttributeValueDTO struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	AttributeID uuid.UUID `json:"attribute_id"`
	Attribute   string    `json:"attribute"`
	Value       string    `json:"value"`
}

func fromModel(p *models.Product, reviewCount int64, averageRating float64) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		SKU:              p.SKU,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,

		CategoryID: p.CategoryID,
		BrandID:    p.BrandID,

		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		CostPrice:    p.CostPrice,

		StockQuantity:   p.StockQuantity,
		StockStatus:     p.StockStatus,
		TrackInventory:  p.TrackInventory,
		AllowBackorders: p.AllowBackorders,

		Weight: p.Weight,
		Length: p.Length,
		Width:  p.Width,
		Height: p.Height,

		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,

		IsActive:         p.IsActive,
		IsFeatured:       p.IsFeatured,
		IsDigital:        p.IsDigital,
		RequiresShipping: p.RequiresShipping,

		DiscountPercentage: p.DiscountPercentage(),
		InStock:            p.InStock(),
		AverageRating:      averageRating,
		ReviewCount:        reviewCount,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func imageFromModel(img *models.ProductImage) *ImageDTO {
	if img == nil {
		return nil
	}
	return &ImageDTO{
		ID:        img.ID,
		ProductID: img.ProductID,
		ImageURL:  img.ImageURL,
		AltText:   img.AltText,
		IsMain:    img.IsMain,
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
}

func variantFromModel(v *models.ProductVariant, productPrice decimal.Decimal) *VariantDTO {
	if v == nil {
		return nil
	}
	return &VariantDTO{
		ID:        v.ID,
		ProductID: v.ProductID,
		Name:      v.Name,
		SKU:       v.SKU,

		Price:          v.Price,
		ComparePrice:   v.ComparePrice,
		EffectivePrice: v.EffectivePrice(productPrice),

		StockQuantity: v.StockQuantity,
		Options:       map[string]any(v.Options),
		IsActive:      v.IsActive,

		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func attributeValueFromModel(v *models.ProductAttributeValue) *AttributeValueDTO {
	if v == nil {
		return nil
	}
	return &AttributeValueDTO{
		ID:          v.ID,
		ProductID:   v.ProductID,
		AttributeID: v.AttributeID,
		Attribute:   v.Attribute.Name,
		Value:       v.Value,
	}
}

func (c CreateProductInput) toModel() *models.Product {
	product := &models.Product{
		Name:             c.Name,
		Slug:             slug.OrDerive(c.Slug, c.Name),
		SKU:              c.SKU,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,

		CategoryID: c.CategoryID,
		BrandID:    c.BrandID,

		Price:        c.Price,
		ComparePrice: c.ComparePrice,
		CostPrice:    c.CostPrice,

		StockQuantity:   c.StockQuantity,
		StockStatus:     enums.StockStatusInStock,
		TrackInventory:  true,
		AllowBackorders: c.AllowBackorders,

		Weight: c.Weight,
		Length: c.Length,
		Width:  c.Width,
		Height: c.Height,

		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,

		IsActive:         true,
		IsFeatured:       c.IsFeatured,
		IsDigital:        c.IsDigital,
		RequiresShipping: true,
	}
	if c.StockStatus != nil {
		product.StockStatus = *c.StockStatus
	}
	if c.TrackInventory != nil {
		product.TrackInventory = *c.TrackInventory
	}
	if c.IsActive != nil {
		product.IsActive = *c.IsActive
	}
	if c.RequiresShipping != nil {
		product.RequiresShipping = *c.RequiresShipping
	}
	return product
}

func (u UpdateProductInput) apply(product *models.Product) {
	if u.Name != nil {
		product.Name = *u.Name
	}
	if u.Description != nil {
		product.Description = *u.Description
	}
	if u.ShortDescription != nil {
		product.ShortDescription = *u.ShortDescription
	}
	if u.CategoryID != nil {
		product.CategoryID = *u.CategoryID
	}
	if u.BrandID != nil {
		product.BrandID = u.BrandID
	}
	if u.Price != nil {
		product.Price = *u.Price
	}
	if u.ComparePrice != nil {
		product.ComparePrice = u.ComparePrice
	}
	if u.CostPrice != nil {
		product.CostPrice = u.CostPrice
	}
	if u.StockQuantity != nil {
		product.StockQuantity = *u.StockQuantity
	}
	if u.StockStatus != nil {
		product.StockStatus = *u.StockStatus
	}
	if u.TrackInventory != nil {
		product.TrackInventory = *u.TrackInventory
	}
	if u.AllowBackorders != nil {
		product.AllowBackorders = *u.AllowBackorders
	}
	if u.MetaTitle != nil {
		product.MetaTitle = *u.MetaTitle
	}
	if u.MetaDescription != nil {
		product.MetaDescription = *u.MetaDescription
	}
	if u.IsActive != nil {
		product.IsActive = *u.IsActive
	}
	if u.IsFeatured != nil {
		product.IsFeatured = *u.IsFeatured
	}
}

func (c CreateVariantInput) toModel() *models.ProductVariant {
	variant := &models.ProductVariant{
		ProductID: c.ProductID,
		Name:      c.Name,
		SKU:       c.SKU,

		Price:        c.Price,
		ComparePrice: c.ComparePrice,

		StockQuantity: c.StockQuantity,
		Options:       datatypes.JSONMap(c.Options),
		IsActive:      true,
	}
	if c.IsActive != nil {
		variant.IsActive = *c.IsActive
	}
	return variant
}

package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/slug"
)

// CategoryDTO is the transport shape for a catalog tree node.
type CategoryDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	IsActive  bool `json:"is_active"`
	Featured  bool `json:"featured"`
	SortOrder int  `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCategoryInput holds the data to insert a catalog node. Slug is
// derived from Name when absent.
type CreateCategoryInput struct {
	Name        string     `json:"name" validate:"required"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	IsActive  *bool `json:"is_active,omitempty"`
	Featured  bool  `json:"featured"`
	SortOrder int   `json:"sort_order"`
}

// BrandDTO is the transport shape for a manufacturer.
type BrandDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Website     string    `json:"website"`
	IsActive    bool      `json:"is_active"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateBrandInput holds the data to insert a brand.
type CreateBrandInput struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	LogoURL     *string `json:"logo_url,omitempty"`
	Website     string  `json:"website"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Featured    bool    `json:"featured"`
}

// TagDTO is the transport shape for a merchandising label.
type TagDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTagInput holds the data to insert a tag.
type CreateTagInput struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func categoryFromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ParentID:    c.ParentID,

		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,

		IsActive:  c.IsActive,
		Featured:  c.Featured,
		SortOrder: c.SortOrder,

		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func categoriesFromModels(rows []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *categoryFromModel(&rows[i]))
	}
	return out
}

func brandFromModel(b *models.Brand) *BrandDTO {
	if b == nil {
		return nil
	}
	return &BrandDTO{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		LogoURL:     b.LogoURL,
		Website:     b.Website,
		IsActive:    b.IsActive,
		Featured:    b.Featured,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func tagFromModel(t *models.Tag) *TagDTO {
	if t == nil {
		return nil
	}
	return &TagDTO{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

func (c CreateCategoryInput) toModel() *models.Category {
	category := &models.Category{
		Name:        c.Name,
		Slug:        slug.OrDerive(c.Slug, c.Name),
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ParentID:    c.ParentID,

		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,

		IsActive:  true,
		Featured:  c.Featured,
		SortOrder: c.SortOrder,
	}
	if c.IsActive != nil {
		category.IsActive = *c.IsActive
	}
	return category
}

func (c CreateBrandInput) toModel() *models.Brand {
	brand := &models.Brand{
		Name:        c.Name,
		Slug:        slug.OrDerive(c.Slug, c.Name),
		Description: c.Description,
		LogoURL:     c.LogoURL,
		Website:     c.Website,
		IsActive:    true,
		Featured:    c.Featured,
	}
	if c.IsActive != nil {
		brand.IsActive = *c.IsActive
	}
	return brand
}

func (c CreateTagInput) toModel() *models.Tag {
	color := c.Color
	if color == "" {
		color = "#007bff"
	}
	return &models.Tag{
		Name:  c.Name,
		Slug:  slug.OrDerive(c.Slug, c.Name),
		Color: color,
	}
}

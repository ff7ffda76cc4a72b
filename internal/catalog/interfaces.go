package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
)

// Repository defines persistence operations for the catalog hierarchy.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	UpdateCategoryParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]models.Category, error)
	CountProducts(ctx context.Context, categoryID uuid.UUID, activeOnly bool) (int64, error)

	CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error)
	FindBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
	ClearBrandFromProducts(ctx context.Context, brandID uuid.UUID) error
	ListBrands(ctx context.Context) ([]models.Brand, error)

	CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

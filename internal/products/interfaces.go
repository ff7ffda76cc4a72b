package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
)

// Repository defines persistence operations for the product aggregate.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
	ApprovedReviewStats(ctx context.Context, productID uuid.UUID) (count int64, average float64, err error)

	CreateImage(ctx context.Context, image *models.ProductImage) (*models.ProductImage, error)
	FindImage(ctx context.Context, id uuid.UUID) (*models.ProductImage, error)
	SaveImage(ctx context.Context, image *models.ProductImage) error
	ListImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error)
	ClearMainSiblings(ctx context.Context, productID, exceptID uuid.UUID) error

	CreateVariant(ctx context.Context, variant *models.ProductVariant) (*models.ProductVariant, error)
	ListVariants(ctx context.Context, productID uuid.UUID) ([]models.ProductVariant, error)

	CreateAttribute(ctx context.Context, attribute *models.ProductAttribute) (*models.ProductAttribute, error)
	CreateAttributeValue(ctx context.Context, value *models.ProductAttributeValue) (*models.ProductAttributeValue, error)
	ListAttributeValues(ctx context.Context, productID uuid.UUID) ([]models.ProductAttributeValue, error)
}

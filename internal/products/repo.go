package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trendoralabs/trendora-backend/internal/repo"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
)

type repository struct {
	base repo.Base
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.base.DB(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.base.DB(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) Save(ctx context.Context, product *models.Product) error {
	return r.base.DB(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.base.DB(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListActive(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.base.DB(ctx).
		Where("is_active").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var rows []models.Product
	err := r.base.DB(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ApprovedReviewStats(ctx context.Context, productID uuid.UUID) (int64, float64, error) {
	var stats struct {
		Count   int64
		Average float64
	}
	err := r.base.DB(ctx).
		Model(&models.ProductReview{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ? AND is_approved", productID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}
	return stats.Count, stats.Average, nil
}

func (r *repository) CreateImage(ctx context.Context, image *models.ProductImage) (*models.ProductImage, error) {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (r *repository) FindImage(ctx context.Context, id uuid.UUID) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.base.DB(ctx).First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *repository) SaveImage(ctx context.Context, image *models.ProductImage) error {
	return r.base.DB(ctx).Save(image).Error
}

func (r *repository) ListImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	var rows []models.ProductImage
	err := r.base.DB(ctx).
		Where("product_id = ?", productID).
		Order("is_main DESC, sort_order ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ClearMainSiblings(ctx context.Context, productID, exceptID uuid.UUID) error {
	return r.base.DB(ctx).
		Model(&models.ProductImage{}).
		Where("product_id = ? AND id <> ?", productID, exceptID).
		UpdateColumn("is_main", false).Error
}

func (r *repository) CreateVariant(ctx context.Context, variant *models.ProductVariant) (*models.ProductVariant, error) {
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(variant).Error; err != nil {
		return nil, err
	}
	return variant, nil
}

func (r *repository) ListVariants(ctx context.Context, productID uuid.UUID) ([]models.ProductVariant, error) {
	var rows []models.ProductVariant
	err := r.base.DB(ctx).
		Where("product_id = ?", productID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateAttribute(ctx context.Context, attribute *models.ProductAttribute) (*models.ProductAttribute, error) {
	if attribute.ID == uuid.Nil {
		attribute.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(attribute).Error; err != nil {
		return nil, err
	}
	return attribute, nil
}

func (r *repository) CreateAttributeValue(ctx context.Context, value *models.ProductAttributeValue) (*models.ProductAttributeValue, error) {
	if value.ID == uuid.Nil {
		value.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Omit("Attribute").Create(value).Error; err != nil {
		return nil, err
	}
	return value, nil
}

func (r *repository) ListAttributeValues(ctx context.Context, productID uuid.UUID) ([]models.ProductAttributeValue, error) {
	var rows []models.ProductAttributeValue
	err := r.base.DB(ctx).
		Preload("Attribute").
		Where("product_id = ?", productID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

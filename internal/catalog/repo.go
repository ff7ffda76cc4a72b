package catalog

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

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: repo.NewBase(tx)}
}

func (r *repository) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *repository) FindCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.base.DB(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) FindCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.base.DB(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) UpdateCategoryParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	return r.base.DB(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		UpdateColumn("parent_id", parentID).Error
}

func (r *repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := r.base.DB(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.base.DB(ctx).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListChildren(ctx context.Context, parentID uuid.UUID) ([]models.Category, error) {
	var rows []models.Category
	err := r.base.DB(ctx).
		Where("parent_id = ?", parentID).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CountProducts(ctx context.Context, categoryID uuid.UUID, activeOnly bool) (int64, error) {
	query := r.base.DB(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID)
	if activeOnly {
		query = query.Where("is_active")
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(brand).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (r *repository) FindBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.base.DB(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *repository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	res := r.base.DB(ctx).Delete(&models.Brand{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ClearBrandFromProducts(ctx context.Context, brandID uuid.UUID) error {
	return r.base.DB(ctx).
		Model(&models.Product{}).
		Where("brand_id = ?", brandID).
		UpdateColumn("brand_id", nil).Error
}

func (r *repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var rows []models.Brand
	if err := r.base.DB(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *repository) ListTags(ctx context.Context) ([]models.Tag, error) {
	var rows []models.Tag
	if err := r.base.DB(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
	"github.com/trendoralabs/trendora-backend/pkg/logger"
	"github.com/trendoralabs/trendora-backend/pkg/validate"
)

// maxTreeDepth bounds the ancestor walk when re-parenting a category.
const maxTreeDepth = 64

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes category, brand and tag operations.
type Service interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*CategoryDTO, error)
	AssignParent(ctx context.Context, categoryID uuid.UUID, parentID *uuid.UUID) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]CategoryDTO, error)
	CategoryProductCount(ctx context.Context, id uuid.UUID) (int64, error)

	CreateBrand(ctx context.Context, input CreateBrandInput) (*BrandDTO, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
	ListBrands(ctx context.Context) ([]BrandDTO, error)

	CreateTag(ctx context.Context, input CreateTagInput) (*TagDTO, error)
	ListTags(ctx context.Context) ([]TagDTO, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo Repository
	Tx   txRunner
	Log  *logger.Logger
}

type service struct {
	repo Repository
	tx   txRunner
	log  *logger.Logger
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: params.Repo, tx: params.Tx, log: params.Log}, nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.ParentID != nil {
		if _, err := s.repo.FindCategory(ctx, *input.ParentID); err != nil {
			return nil, db.Translate(err, "find parent category")
		}
	}

	category, err := s.repo.CreateCategory(ctx, input.toModel())
	if err != nil {
		return nil, db.Translate(err, "create category")
	}
	return categoryFromModel(category), nil
}

func (s *service) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id required")
	}
	category, err := s.repo.FindCategory(ctx, id)
	if err != nil {
		return nil, db.Translate(err, "find category")
	}
	return categoryFromModel(category), nil
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*CategoryDTO, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category slug required")
	}
	category, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, db.Translate(err, "find category by slug")
	}
	return categoryFromModel(category), nil
}

// AssignParent re-parents a category. A nil parent detaches the node to
// the root. Self-parenting and any assignment that would close a cycle
// are rejected before the write.
func (s *service) AssignParent(ctx context.Context, categoryID uuid.UUID, parentID *uuid.UUID) error {
	if categoryID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "category id required")
	}
	if _, err := s.repo.FindCategory(ctx, categoryID); err != nil {
		return db.Translate(err, "find category")
	}
	if parentID == nil {
		if err := s.repo.UpdateCategoryParent(ctx, categoryID, nil); err != nil {
			return db.Translate(err, "detach category")
		}
		return nil
	}
	if *parentID == categoryID {
		return pkgerrors.New(pkgerrors.CodeValidation, "category cannot be its own parent")
	}

	// Walk from the candidate parent to the root; hitting the category
	// being moved means the assignment would close a cycle.
	cursor := *parentID
	for depth := 0; depth < maxTreeDepth; depth++ {
		node, err := s.repo.FindCategory(ctx, cursor)
		if err != nil {
			return db.Translate(err, "walk category ancestors")
		}
		if node.ID == categoryID {
			return pkgerrors.New(pkgerrors.CodeValidation, "assignment would create a category cycle")
		}
		if node.ParentID == nil {
			break
		}
		cursor = *node.ParentID
	}

	if err := s.repo.UpdateCategoryParent(ctx, categoryID, parentID); err != nil {
		return db.Translate(err, "assign category parent")
	}
	return nil
}

func (s *service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "category id required")
	}
	count, err := s.repo.CountProducts(ctx, id, false)
	if err != nil {
		return db.Translate(err, "count category products")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeReferentialIntegrity, "category still referenced by products").
			WithDetails(map[string]any{"product_count": count})
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return db.Translate(err, "delete category")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, db.Translate(err, "list categories")
	}
	return categoriesFromModels(rows), nil
}

func (s *service) ListChildren(ctx context.Context, parentID uuid.UUID) ([]CategoryDTO, error) {
	if parentID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "parent id required")
	}
	rows, err := s.repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, db.Translate(err, "list category children")
	}
	return categoriesFromModels(rows), nil
}

func (s *service) CategoryProductCount(ctx context.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "category id required")
	}
	count, err := s.repo.CountProducts(ctx, id, true)
	if err != nil {
		return 0, db.Translate(err, "count category products")
	}
	return count, nil
}

func (s *service) CreateBrand(ctx context.Context, input CreateBrandInput) (*BrandDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	brand, err := s.repo.CreateBrand(ctx, input.toModel())
	if err != nil {
		return nil, db.Translate(err, "create brand")
	}
	return brandFromModel(brand), nil
}

// DeleteBrand nulls the brand reference on every product before the row
// is removed, inside one transaction.
func (s *service) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "brand id required")
	}
	if _, err := s.repo.FindBrand(ctx, id); err != nil {
		return db.Translate(err, "find brand")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearBrandFromProducts(ctx, id); err != nil {
			return db.Translate(err, "clear brand from products")
		}
		if err := repo.DeleteBrand(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return db.Translate(err, "delete brand")
		}
		return nil
	})
}

func (s *service) ListBrands(ctx context.Context) ([]BrandDTO, error) {
	rows, err := s.repo.ListBrands(ctx)
	if err != nil {
		return nil, db.Translate(err, "list brands")
	}
	out := make([]BrandDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *brandFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateTag(ctx context.Context, input CreateTagInput) (*TagDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	tag, err := s.repo.CreateTag(ctx, input.toModel())
	if err != nil {
		return nil, db.Translate(err, "create tag")
	}
	return tagFromModel(tag), nil
}

func (s *service) ListTags(ctx context.Context) ([]TagDTO, error) {
	rows, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, db.Translate(err, "list tags")
	}
	out := make([]TagDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *tagFromModel(&rows[i]))
	}
	return out, nil
}

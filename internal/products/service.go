package products

import (
	"context"
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
	"github.com/trendoralabs/trendora-backend/pkg/images"
	"github.com/trendoralabs/trendora-backend/pkg/logger"
	"github.com/trendoralabs/trendora-backend/pkg/slug"
	"github.com/trendoralabs/trendora-backend/pkg/validate"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// BlobStore persists processed image bytes and returns a public URL.
type BlobStore interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
}

// Service exposes the product aggregate: core rows, images, variants and
// attribute values.
type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	GetBySlug(ctx context.Context, slug string) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]ProductDTO, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductDTO, error)

	AddImage(ctx context.Context, input AddImageInput) (*ImageDTO, error)
	SetMainImage(ctx context.Context, productID, imageID uuid.UUID) error
	ListImages(ctx context.Context, productID uuid.UUID) ([]ImageDTO, error)

	CreateVariant(ctx context.Context, input CreateVariantInput) (*VariantDTO, error)
	ListVariants(ctx context.Context, productID uuid.UUID) ([]VariantDTO, error)

	DefineAttribute(ctx context.Context, name string) (*AttributeDTO, error)
	SetAttributeValue(ctx context.Context, productID, attributeID uuid.UUID, value string) (*AttributeValueDTO, error)
	ListAttributeValues(ctx context.Context, productID uuid.UUID) ([]AttributeValueDTO, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo   Repository
	Tx     txRunner
	Images images.Processor
	Store  BlobStore
	Log    *logger.Logger
}

type service struct {
	repo   Repository
	tx     txRunner
	images images.Processor
	store  BlobStore
	log    *logger.Logger
}

// NewService builds a products service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Images == nil {
		return nil, fmt.Errorf("image processor required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("blob store required")
	}
	return &service{
		repo:   params.Repo,
		tx:     params.Tx,
		images: params.Images,
		store:  params.Store,
		log:    params.Log,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if !input.Price.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	if input.StockStatus != nil && !input.StockStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid stock status")
	}

	product, err := s.repo.Create(ctx, input.toModel())
	if err != nil {
		return nil, db.Translate(err, "create product")
	}
	if s.log != nil {
		s.log.Info(s.log.WithProductID(ctx, product.ID.String()), "product created")
	}
	return s.withStats(ctx, product)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Translate(err, "find product")
	}
	return s.withStats(ctx, product)
}

func (s *service) GetBySlug(ctx context.Context, productSlug string) (*ProductDTO, error) {
	if productSlug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug required")
	}
	product, err := s.repo.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, db.Translate(err, "find product by slug")
	}
	return s.withStats(ctx, product)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if input.Price != nil && !input.Price.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	if input.StockStatus != nil && !input.StockStatus.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid stock status")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Translate(err, "find product")
	}
	input.apply(product)
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, db.Translate(err, "update product")
	}
	return s.withStats(ctx, product)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return db.Translate(err, "delete product")
	}
	return nil
}

func (s *service) ListActive(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, db.Translate(err, "list products")
	}
	return s.collect(ctx, rows)
}

func (s *service) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductDTO, error) {
	if categoryID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id required")
	}
	rows, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, db.Translate(err, "list products by category")
	}
	return s.collect(ctx, rows)
}

// AddImage runs the upload through the configured processor, stores the
// result, then writes the gallery row. A main image clears its siblings
// inside the same transaction.
func (s *service) AddImage(ctx context.Context, input AddImageInput) (*ImageDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, db.Translate(err, "find product")
	}

	processed, err := s.images.Fit(input.Data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "process image")
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	if ext == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "filename must carry an extension")
	}

	image := &models.ProductImage{
		ID:        uuid.New(),
		ProductID: product.ID,
		AltText:   input.AltText,
		IsMain:    input.IsMain,
		SortOrder: input.SortOrder,
	}
	key := fmt.Sprintf("products/%s/%s%s", product.ID, image.ID, ext)
	url, err := s.store.Save(ctx, key, processed)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store image")
	}
	image.ImageURL = url

	if !image.IsMain {
		if _, err := s.repo.CreateImage(ctx, image); err != nil {
			return nil, db.Translate(err, "create product image")
		}
		return imageFromModel(image), nil
	}

	// demote the current main image before inserting so the partial
	// unique index never sees two main rows
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearMainSiblings(ctx, product.ID, image.ID); err != nil {
			return db.Translate(err, "clear main image siblings")
		}
		if _, err := repo.CreateImage(ctx, image); err != nil {
			return db.Translate(err, "create product image")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return imageFromModel(image), nil
}

func (s *service) SetMainImage(ctx context.Context, productID, imageID uuid.UUID) error {
	if productID == uuid.Nil || imageID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id and image id required")
	}
	image, err := s.repo.FindImage(ctx, imageID)
	if err != nil {
		return db.Translate(err, "find product image")
	}
	if image.ProductID != productID {
		return pkgerrors.New(pkgerrors.CodeValidation, "image does not belong to product")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearMainSiblings(ctx, productID, imageID); err != nil {
			return db.Translate(err, "clear main image siblings")
		}
		image.IsMain = true
		if err := repo.SaveImage(ctx, image); err != nil {
			return db.Translate(err, "set main image")
		}
		return nil
	})
}

func (s *service) ListImages(ctx context.Context, productID uuid.UUID) ([]ImageDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	rows, err := s.repo.ListImages(ctx, productID)
	if err != nil {
		return nil, db.Translate(err, "list product images")
	}
	out := make([]ImageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *imageFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateVariant(ctx context.Context, input CreateVariantInput) (*VariantDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, db.Translate(err, "find product")
	}

	variant, err := s.repo.CreateVariant(ctx, input.toModel())
	if err != nil {
		return nil, db.Translate(err, "create product variant")
	}
	return variantFromModel(variant, product.Price), nil
}

func (s *service) ListVariants(ctx context.Context, productID uuid.UUID) ([]VariantDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, db.Translate(err, "find product")
	}
	rows, err := s.repo.ListVariants(ctx, productID)
	if err != nil {
		return nil, db.Translate(err, "list product variants")
	}
	out := make([]VariantDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *variantFromModel(&rows[i], product.Price))
	}
	return out, nil
}

func (s *service) DefineAttribute(ctx context.Context, name string) (*AttributeDTO, error) {
	if strings.TrimSpace(name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "attribute name required")
	}
	attribute, err := s.repo.CreateAttribute(ctx, &models.ProductAttribute{
		Name: name,
		Slug: slug.Make(name),
	})
	if err != nil {
		return nil, db.Translate(err, "create attribute")
	}
	return &AttributeDTO{ID: attribute.ID, Name: attribute.Name, Slug: attribute.Slug}, nil
}

// SetAttributeValue binds a value to a (product, attribute) pair. An
// existing binding is never overwritten; the duplicate surfaces as a
// unique constraint failure.
func (s *service) SetAttributeValue(ctx context.Context, productID, attributeID uuid.UUID, value string) (*AttributeValueDTO, error) {
	if productID == uuid.Nil || attributeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id and attribute id required")
	}
	if strings.TrimSpace(value) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "attribute value required")
	}
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		return nil, db.Translate(err, "find product")
	}

	row, err := s.repo.CreateAttributeValue(ctx, &models.ProductAttributeValue{
		ProductID:   productID,
		AttributeID: attributeID,
		Value:       value,
	})
	if err != nil {
		return nil, db.Translate(err, "create attribute value")
	}
	return attributeValueFromModel(row), nil
}

func (s *service) ListAttributeValues(ctx context.Context, productID uuid.UUID) ([]AttributeValueDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	rows, err := s.repo.ListAttributeValues(ctx, productID)
	if err != nil {
		return nil, db.Translate(err, "list attribute values")
	}
	out := make([]AttributeValueDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *attributeValueFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) withStats(ctx context.Context, product *models.Product) (*ProductDTO, error) {
	count, average, err := s.repo.ApprovedReviewStats(ctx, product.ID)
	if err != nil {
		return nil, db.Translate(err, "load review stats")
	}
	return fromModel(product, count, roundRating(average)), nil
}

func (s *service) collect(ctx context.Context, rows []models.Product) ([]ProductDTO, error) {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dto, err := s.withStats(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func roundRating(average float64) float64 {
	return math.Round(average*10) / 10
}

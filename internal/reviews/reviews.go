package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/internal/repo"
	"github.com/trendoralabs/trendora-backend/pkg/db"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
	"github.com/trendoralabs/trendora-backend/pkg/logger"
	"github.com/trendoralabs/trendora-backend/pkg/validate"
)

// ReviewDTO is the transport shape for a product review.
type ReviewDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`

	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`

	IsApproved         bool `json:"is_approved"`
	IsVerifiedPurchase bool `json:"is_verified_purchase"`
	HelpfulCount       int  `json:"helpful_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateReviewInput holds the data to insert a review. Reviews always
// start unapproved.
type CreateReviewInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`

	Rating  int    `json:"rating"`
	Title   string `json:"title" validate:"required"`
	Comment string `json:"comment"`

	IsVerifiedPurchase bool `json:"is_verified_purchase"`
}

func fromModel(r *models.ProductReview) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,

		Rating:  r.Rating,
		Title:   r.Title,
		Comment: r.Comment,

		IsApproved:         r.IsApproved,
		IsVerifiedPurchase: r.IsVerifiedPurchase,
		HelpfulCount:       r.HelpfulCount,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repository defines persistence operations for reviews.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, review *models.ProductReview) (*models.ProductReview, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProductReview, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
	ListForProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]models.ProductReview, error)
	ProductExists(ctx context.Context, productID uuid.UUID) (bool, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds a reviews repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, review *models.ProductReview) (*models.ProductReview, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := r.base.DB(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *repository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	res := r.base.DB(ctx).
		Model(&models.ProductReview{}).
		Where("id = ?", id).
		UpdateColumn("is_approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListForProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]models.ProductReview, error) {
	query := r.base.DB(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC")
	if approvedOnly {
		query = query.Where("is_approved")
	}
	var rows []models.ProductReview
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ProductExists(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.base.DB(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Service exposes review moderation and reads.
type Service interface {
	Create(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error)
	Approve(ctx context.Context, id uuid.UUID) error
	ListForProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]ReviewDTO, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo Repository
	Log  *logger.Logger
}

type service struct {
	repo Repository
	log  *logger.Logger
}

// NewService builds a reviews service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	return &service{repo: params.Repo, log: params.Log}, nil
}

func (s *service) Create(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	exists, err := s.repo.ProductExists(ctx, input.ProductID)
	if err != nil {
		return nil, db.Translate(err, "check product")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	review, err := s.repo.Create(ctx, &models.ProductReview{
		ProductID: input.ProductID,
		UserID:    input.UserID,

		Rating:  input.Rating,
		Title:   input.Title,
		Comment: input.Comment,

		IsVerifiedPurchase: input.IsVerifiedPurchase,
	})
	if err != nil {
		return nil, db.Translate(err, "create review")
	}
	return fromModel(review), nil
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "review id required")
	}
	if err := s.repo.SetApproved(ctx, id, true); err != nil {
		return db.Translate(err, "approve review")
	}
	return nil
}

func (s *service) ListForProduct(ctx context.Context, productID uuid.UUID, approvedOnly bool) ([]ReviewDTO, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	rows, err := s.repo.ListForProduct(ctx, productID, approvedOnly)
	if err != nil {
		return nil, db.Translate(err, "list reviews")
	}
	out := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *fromModel(&rows[i]))
	}
	return out, nil
}

package activity

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/internal/repo"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/pagination"
)

// Repository defines persistence operations for the activity stream.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, event *models.UserActivity) (*models.UserActivity, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int, cursor *pagination.Cursor) ([]models.UserActivity, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds an activity repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, event *models.UserActivity) (*models.UserActivity, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int, cursor *pagination.Cursor) ([]models.UserActivity, error) {
	query := r.base.DB(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(limit)

	if cursor != nil {
		query = query.Where(
			"timestamp < ? OR (timestamp = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.UserActivity
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

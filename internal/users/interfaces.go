package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
)

// Repository defines persistence operations for the users table.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ListActive(ctx context.Context) ([]models.User, error)
	ListVerified(ctx context.Context) ([]models.User, error)
	ListStaff(ctx context.Context) ([]models.User, error)
	ListJoinedSince(ctx context.Context, cutoff time.Time) ([]models.User, error)
	ListWithOrders(ctx context.Context) ([]models.User, error)
	ListByLocation(ctx context.Context, location string) ([]models.User, error)
}

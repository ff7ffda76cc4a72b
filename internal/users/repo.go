package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/internal/repo"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
)

type repository struct {
	base repo.Base
}

// NewRepository builds a users repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: repo.NewBase(tx)}
}

func (r *repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.base.DB(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.base.DB(ctx).
		Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.base.DB(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListActive(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, r.base.DB(ctx).Where("is_active"))
}

func (r *repository) ListVerified(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, r.base.DB(ctx).Where("is_verified"))
}

func (r *repository) ListStaff(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, r.base.DB(ctx).Where("is_staff"))
}

func (r *repository) ListJoinedSince(ctx context.Context, cutoff time.Time) ([]models.User, error) {
	return r.list(ctx, r.base.DB(ctx).Where("date_joined >= ?", cutoff))
}

func (r *repository) ListWithOrders(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, r.base.DB(ctx).
		Where("EXISTS (SELECT 1 FROM orders WHERE orders.user_id = users.id)"))
}

func (r *repository) ListByLocation(ctx context.Context, location string) ([]models.User, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(location)) + "%"
	return r.list(ctx, r.base.DB(ctx).
		Joins("JOIN user_profiles ON user_profiles.user_id = users.id").
		Where("LOWER(user_profiles.location) LIKE ?", pattern))
}

func (r *repository) list(_ context.Context, query *gorm.DB) ([]models.User, error) {
	var rows []models.User
	if err := query.Order("date_joined DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

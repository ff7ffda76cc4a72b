package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/internal/repo"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

type repository struct {
	base repo.Base
}

// NewRepository builds a profiles repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: repo.NewBase(tx)}
}

func (r *repository) FindProfileByUser(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.base.DB(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) CreateProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *repository) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	return r.base.DB(ctx).Save(profile).Error
}

func (r *repository) CreateAddress(ctx context.Context, addr *models.Address) (*models.Address, error) {
	if addr.ID == uuid.Nil {
		addr.ID = uuid.New()
	}
	if err := r.base.DB(ctx).Create(addr).Error; err != nil {
		return nil, err
	}
	return addr, nil
}

func (r *repository) FindAddress(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	var addr models.Address
	if err := r.base.DB(ctx).First(&addr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *repository) SaveAddress(ctx context.Context, addr *models.Address) error {
	return r.base.DB(ctx).Save(addr).Error
}

func (r *repository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	res := r.base.DB(ctx).Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	var rows []models.Address
	err := r.base.DB(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ClearDefaultSiblings(ctx context.Context, userID uuid.UUID, addrType enums.AddressType, exceptID uuid.UUID) error {
	return r.base.DB(ctx).
		Model(&models.Address{}).
		Where("user_id = ? AND type = ? AND id <> ?", userID, addrType, exceptID).
		UpdateColumn("is_default", false).Error
}

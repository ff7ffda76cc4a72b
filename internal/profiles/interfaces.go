package profiles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// Repository defines persistence operations for profiles and addresses.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindProfileByUser(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile *models.UserProfile) error

	CreateAddress(ctx context.Context, addr *models.Address) (*models.Address, error)
	FindAddress(ctx context.Context, id uuid.UUID) (*models.Address, error)
	SaveAddress(ctx context.Context, addr *models.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	ClearDefaultSiblings(ctx context.Context, userID uuid.UUID, addrType enums.AddressType, exceptID uuid.UUID) error
}

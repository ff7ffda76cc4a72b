package profiles

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

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes profile and address operations.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, input UpsertProfileInput) (*ProfileDTO, error)

	CreateAddress(ctx context.Context, input CreateAddressInput) (*AddressDTO, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, input UpdateAddressInput) (*AddressDTO, error)
	SetDefaultAddress(ctx context.Context, id uuid.UUID) (*AddressDTO, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]AddressDTO, error)
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

// NewService builds a profiles service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("profiles repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: params.Repo, tx: params.Tx, log: params.Log}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	profile, err := s.repo.FindProfileByUser(ctx, userID)
	if err != nil {
		return nil, db.Translate(err, "find profile")
	}
	return profileFromModel(profile), nil
}

func (s *service) UpsertProfile(ctx context.Context, userID uuid.UUID, input UpsertProfileInput) (*ProfileDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if input.Visibility != nil && !input.Visibility.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid profile visibility")
	}

	profile, err := s.repo.FindProfileByUser(ctx, userID)
	switch {
	case err == nil:
		input.apply(profile)
		if err := s.repo.SaveProfile(ctx, profile); err != nil {
			return nil, db.Translate(err, "update profile")
		}
		return profileFromModel(profile), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		fresh := &models.UserProfile{
			UserID:     userID,
			Visibility: enums.ProfileVisibilityPublic,
		}
		input.apply(fresh)
		created, err := s.repo.CreateProfile(ctx, fresh)
		if err != nil {
			return nil, db.Translate(err, "create profile")
		}
		return profileFromModel(created), nil
	default:
		return nil, db.Translate(err, "find profile")
	}
}

func (s *service) CreateAddress(ctx context.Context, input CreateAddressInput) (*AddressDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid address type")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	addr := input.toModel()
	if !addr.IsDefault {
		created, err := s.repo.CreateAddress(ctx, addr)
		if err != nil {
			return nil, db.Translate(err, "create address")
		}
		return addressFromModel(created), nil
	}

	// demote the current default before inserting so the partial
	// unique index never sees two default rows
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearDefaultSiblings(ctx, addr.UserID, addr.Type, addr.ID); err != nil {
			return db.Translate(err, "clear default siblings")
		}
		if _, err := repo.CreateAddress(ctx, addr); err != nil {
			return db.Translate(err, "create address")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return addressFromModel(addr), nil
}

func (s *service) UpdateAddress(ctx context.Context, id uuid.UUID, input UpdateAddressInput) (*AddressDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address id required")
	}
	if input.Type != nil && !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid address type")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	addr, err := s.repo.FindAddress(ctx, id)
	if err != nil {
		return nil, db.Translate(err, "find address")
	}
	input.apply(addr)

	if !addr.IsDefault {
		if err := s.repo.SaveAddress(ctx, addr); err != nil {
			return nil, db.Translate(err, "update address")
		}
		return addressFromModel(addr), nil
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.ClearDefaultSiblings(ctx, addr.UserID, addr.Type, addr.ID); err != nil {
			return db.Translate(err, "clear default siblings")
		}
		if err := repo.SaveAddress(ctx, addr); err != nil {
			return db.Translate(err, "update address")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return addressFromModel(addr), nil
}

func (s *service) SetDefaultAddress(ctx context.Context, id uuid.UUID) (*AddressDTO, error) {
	isDefault := true
	return s.UpdateAddress(ctx, id, UpdateAddressInput{IsDefault: &isDefault})
}

func (s *service) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "address id required")
	}
	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return db.Translate(err, "delete address")
	}
	return nil
}

func (s *service) ListAddresses(ctx context.Context, userID uuid.UUID) ([]AddressDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	rows, err := s.repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, db.Translate(err, "list addresses")
	}
	return addressesFromModels(rows), nil
}

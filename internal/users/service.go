package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/config"
	"github.com/trendoralabs/trendora-backend/pkg/db"
	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
	"github.com/trendoralabs/trendora-backend/pkg/logger"
	"github.com/trendoralabs/trendora-backend/pkg/security"
	"github.com/trendoralabs/trendora-backend/pkg/validate"
)

// Service exposes account registration, lookup and segment listings.
type Service interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	CreateStaffUser(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	CreateSuperuser(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	FindByEmail(ctx context.Context, email string) (*UserDTO, error)
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ListActive(ctx context.Context) ([]UserDTO, error)
	ListVerified(ctx context.Context) ([]UserDTO, error)
	ListStaff(ctx context.Context) ([]UserDTO, error)
	ListJoinedSince(ctx context.Context, cutoff time.Time) ([]UserDTO, error)
	ListWithOrders(ctx context.Context) ([]UserDTO, error)
	ListByLocation(ctx context.Context, location string) ([]UserDTO, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo      Repository
	Passwords config.PasswordConfig
	Log       *logger.Logger
}

type service struct {
	repo      Repository
	passwords config.PasswordConfig
	log       *logger.Logger
}

// NewService builds a users service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{
		repo:      params.Repo,
		passwords: params.Passwords,
		log:       params.Log,
	}, nil
}

func (s *service) CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	return s.create(ctx, input)
}

func (s *service) CreateStaffUser(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	if input.IsStaff != nil && !*input.IsStaff {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "staff user must have is_staff set")
	}
	input.IsStaff = boolPtr(true)
	input.IsActive = boolPtr(true)
	input.IsVerified = boolPtr(true)
	return s.create(ctx, input)
}

func (s *service) CreateSuperuser(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	if input.IsStaff != nil && !*input.IsStaff {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "superuser must have is_staff set")
	}
	if input.IsSuperuser != nil && !*input.IsSuperuser {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "superuser must have is_superuser set")
	}
	input.IsStaff = boolPtr(true)
	input.IsSuperuser = boolPtr(true)
	input.IsActive = boolPtr(true)
	input.IsVerified = boolPtr(true)
	return s.create(ctx, input)
}

func (s *service) create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password, s.passwords)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.repo.Create(ctx, input.toModel(hash))
	if err != nil {
		return nil, db.Translate(err, "create user")
	}

	if s.log != nil {
		s.log.Info(s.log.WithUserID(ctx, user.ID.String()), "user created")
	}
	return FromModel(user), nil
}

func (s *service) FindByID(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Translate(err, "find user")
	}
	return FromModel(user), nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (*UserDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, db.Translate(err, "find user by email")
	}
	return FromModel(user), nil
}

func (s *service) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if err := s.repo.UpdateLastLogin(ctx, id, at); err != nil {
		return db.Translate(err, "record login")
	}
	return nil
}

func (s *service) ListActive(ctx context.Context) ([]UserDTO, error) {
	return s.list(s.repo.ListActive(ctx))
}

func (s *service) ListVerified(ctx context.Context) ([]UserDTO, error) {
	return s.list(s.repo.ListVerified(ctx))
}

func (s *service) ListStaff(ctx context.Context) ([]UserDTO, error) {
	return s.list(s.repo.ListStaff(ctx))
}

func (s *service) ListJoinedSince(ctx context.Context, cutoff time.Time) ([]UserDTO, error) {
	return s.list(s.repo.ListJoinedSince(ctx, cutoff))
}

func (s *service) ListWithOrders(ctx context.Context) ([]UserDTO, error) {
	return s.list(s.repo.ListWithOrders(ctx))
}

func (s *service) ListByLocation(ctx context.Context, location string) ([]UserDTO, error) {
	if strings.TrimSpace(location) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location filter required")
	}
	return s.list(s.repo.ListByLocation(ctx, location))
}

func (s *service) list(rows []models.User, err error) ([]UserDTO, error) {
	if err != nil {
		return nil, db.Translate(err, "list users")
	}
	return fromModels(rows), nil
}

func boolPtr(v bool) *bool {
	return &v
}

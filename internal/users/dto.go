package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// UserDTO is the transport shape that omits the credential hash.
type UserDTO struct {
	ID          uuid.UUID     `json:"id"`
	Email       string        `json:"email"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	FullName    string        `json:"full_name"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	IsActive    bool          `json:"is_active"`
	IsStaff     bool          `json:"is_staff"`
	IsSuperuser bool          `json:"is_superuser"`
	IsVerified  bool          `json:"is_verified"`
	DateOfBirth *time.Time    `json:"date_of_birth,omitempty"`
	Gender      *enums.Gender `json:"gender,omitempty"`

	NewsletterSubscription bool `json:"newsletter_subscription"`
	MarketingEmails        bool `json:"marketing_emails"`

	DateJoined  time.Time  `json:"date_joined"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateUserInput holds the data required to register an account.
type CreateUserInput struct {
	Email       string        `json:"email" validate:"required,email"`
	Password    string        `json:"password" validate:"required,min=8"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	PhoneNumber *string       `json:"phone_number,omitempty" validate:"omitempty,phone"`
	DateOfBirth *time.Time    `json:"date_of_birth,omitempty"`
	Gender      *enums.Gender `json:"gender,omitempty"`

	NewsletterSubscription *bool `json:"newsletter_subscription,omitempty"`
	MarketingEmails        *bool `json:"marketing_emails,omitempty"`

	IsActive    *bool `json:"is_active,omitempty"`
	IsStaff     *bool `json:"is_staff,omitempty"`
	IsSuperuser *bool `json:"is_superuser,omitempty"`
	IsVerified  *bool `json:"is_verified,omitempty"`
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsVerified:  u.IsVerified,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,

		NewsletterSubscription: u.NewsletterSubscription,
		MarketingEmails:        u.MarketingEmails,

		DateJoined:  u.DateJoined,
		LastLoginAt: u.LastLoginAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func fromModels(rows []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func (c CreateUserInput) toModel(passwordHash string) *models.User {
	user := &models.User{
		Email:        c.Email,
		PasswordHash: passwordHash,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		PhoneNumber:  c.PhoneNumber,
		DateOfBirth:  c.DateOfBirth,
		Gender:       c.Gender,

		IsActive:               true,
		NewsletterSubscription: true,
		MarketingEmails:        true,
	}
	if c.IsActive != nil {
		user.IsActive = *c.IsActive
	}
	if c.IsStaff != nil {
		user.IsStaff = *c.IsStaff
	}
	if c.IsSuperuser != nil {
		user.IsSuperuser = *c.IsSuperuser
	}
	if c.IsVerified != nil {
		user.IsVerified = *c.IsVerified
	}
	if c.NewsletterSubscription != nil {
		user.NewsletterSubscription = *c.NewsletterSubscription
	}
	if c.MarketingEmails != nil {
		user.MarketingEmails = *c.MarketingEmails
	}
	return user
}

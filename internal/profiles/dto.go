package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// ProfileDTO is the transport shape for a user profile.
type ProfileDTO struct {
	ID         uuid.UUID               `json:"id"`
	UserID     uuid.UUID               `json:"user_id"`
	AvatarURL  *string                 `json:"avatar_url,omitempty"`
	Bio        string                  `json:"bio"`
	Website    string                  `json:"website"`
	Location   string                  `json:"location"`
	Instagram  string                  `json:"instagram"`
	Twitter    string                  `json:"twitter"`
	Facebook   string                  `json:"facebook"`
	Visibility enums.ProfileVisibility `json:"visibility"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// UpsertProfileInput carries the mutable profile fields. Nil fields keep
// the stored value.
type UpsertProfileInput struct {
	AvatarURL  *string                  `json:"avatar_url,omitempty"`
	Bio        *string                  `json:"bio,omitempty"`
	Website    *string                  `json:"website,omitempty"`
	Location   *string                  `json:"location,omitempty"`
	Instagram  *string                  `json:"instagram,omitempty"`
	Twitter    *string                  `json:"twitter,omitempty"`
	Facebook   *string                  `json:"facebook,omitempty"`
	Visibility *enums.ProfileVisibility `json:"visibility,omitempty"`
}

// AddressDTO is the transport shape for a saved address.
type AddressDTO struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      enums.AddressType `json:"type"`
	IsDefault bool              `json:"is_default"`

	FullName      string `json:"full_name"`
	PhoneNumber   string `json:"phone_number"`
	AddressLine1  string `json:"address_line_1"`
	AddressLine2  string `json:"address_line_2"`
	City          string `json:"city"`
	StateProvince string `json:"state_province"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`

	DeliveryInstructions string `json:"delivery_instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAddressInput holds the data required to persist a new address.
type CreateAddressInput struct {
	UserID    uuid.UUID         `json:"user_id" validate:"required"`
	Type      enums.AddressType `json:"type" validate:"required"`
	IsDefault bool              `json:"is_default"`

	FullName      string `json:"full_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required,phone"`
	AddressLine1  string `json:"address_line_1" validate:"required"`
	AddressLine2  string `json:"address_line_2"`
	City          string `json:"city" validate:"required"`
	StateProvince string `json:"state_province" validate:"required"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country"`

	DeliveryInstructions string `json:"delivery_instructions"`
}

// UpdateAddressInput carries partial address updates. Nil fields keep
// the stored value.
type UpdateAddressInput struct {
	Type      *enums.AddressType `json:"type,omitempty"`
	IsDefault *bool              `json:"is_default,omitempty"`

	FullName      *string `json:"full_name,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty" validate:"omitempty,phone"`
	AddressLine1  *string `json:"address_line_1,omitempty"`
	AddressLine2  *string `json:"address_line_2,omitempty"`
	City          *string `json:"city,omitempty"`
	StateProvince *string `json:"state_province,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	Country       *string `json:"country,omitempty"`

	DeliveryInstructions *string `json:"delivery_instructions,omitempty"`
}

func (u UpsertProfileInput) apply(profile *models.UserProfile) {
	if u.AvatarURL != nil {
		profile.AvatarURL = u.AvatarURL
	}
	if u.Bio != nil {
		profile.Bio = *u.Bio
	}
	if u.Website != nil {
		profile.Website = *u.Website
	}
	if u.Location != nil {
		profile.Location = *u.Location
	}
	if u.Instagram != nil {
		profile.Instagram = *u.Instagram
	}
	if u.Twitter != nil {
		profile.Twitter = *u.Twitter
	}
	if u.Facebook != nil {
		profile.Facebook = *u.Facebook
	}
	if u.Visibility != nil {
		profile.Visibility = *u.Visibility
	}
}

func profileFromModel(p *models.UserProfile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:         p.ID,
		UserID:     p.UserID,
		AvatarURL:  p.AvatarURL,
		Bio:        p.Bio,
		Website:    p.Website,
		Location:   p.Location,
		Instagram:  p.Instagram,
		Twitter:    p.Twitter,
		Facebook:   p.Facebook,
		Visibility: p.Visibility,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func addressFromModel(a *models.Address) *AddressDTO {
	if a == nil {
		return nil
	}
	return &AddressDTO{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      a.Type,
		IsDefault: a.IsDefault,

		FullName:      a.FullName,
		PhoneNumber:   a.PhoneNumber,
		AddressLine1:  a.AddressLine1,
		AddressLine2:  a.AddressLine2,
		City:          a.City,
		StateProvince: a.StateProvince,
		PostalCode:    a.PostalCode,
		Country:       a.Country,

		DeliveryInstructions: a.DeliveryInstructions,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func addressesFromModels(rows []models.Address) []AddressDTO {
	out := make([]AddressDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *addressFromModel(&rows[i]))
	}
	return out
}

func (c CreateAddressInput) toModel() *models.Address {
	country := c.Country
	if country == "" {
		country = "United States"
	}
	return &models.Address{
		UserID:    c.UserID,
		Type:      c.Type,
		IsDefault: c.IsDefault,

		FullName:      c.FullName,
		PhoneNumber:   c.PhoneNumber,
		AddressLine1:  c.AddressLine1,
		AddressLine2:  c.AddressLine2,
		City:          c.City,
		StateProvince: c.StateProvince,
		PostalCode:    c.PostalCode,
		Country:       country,

		DeliveryInstructions: c.DeliveryInstructions,
	}
}

func (u UpdateAddressInput) apply(addr *models.Address) {
	if u.Type != nil {
		addr.Type = *u.Type
	}
	if u.IsDefault != nil {
		addr.IsDefault = *u.IsDefault
	}
	if u.FullName != nil {
		addr.FullName = *u.FullName
	}
	if u.PhoneNumber != nil {
		addr.PhoneNumber = *u.PhoneNumber
	}
	if u.AddressLine1 != nil {
		addr.AddressLine1 = *u.AddressLine1
	}
	if u.AddressLine2 != nil {
		addr.AddressLine2 = *u.AddressLine2
	}
	if u.City != nil {
		addr.City = *u.City
	}
	if u.StateProvince != nil {
		addr.StateProvince = *u.StateProvince
	}
	if u.PostalCode != nil {
		addr.PostalCode = *u.PostalCode
	}
	if u.Country != nil {
		addr.Country = *u.Country
	}
	if u.DeliveryInstructions != nil {
		addr.DeliveryInstructions = *u.DeliveryInstructions
	}
}

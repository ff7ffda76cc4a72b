package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// Address is a postal address attached to a user. At most one row per
// (user, type) may carry IsDefault; the profiles service maintains that
// inside a transaction.
type Address struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index:addresses_user_id_idx"`
	Type      enums.AddressType `gorm:"column:type;type:text;not null"`
	IsDefault bool              `gorm:"column:is_default;not null"`

	FullName      string `gorm:"column:full_name;not null"`
	PhoneNumber   string `gorm:"column:phone_number;not null"`
	AddressLine1  string `gorm:"column:address_line_1;not null"`
	AddressLine2  string `gorm:"column:address_line_2;not null;default:''"`
	City          string `gorm:"column:city;not null"`
	StateProvince string `gorm:"column:state_province;not null"`
	PostalCode    string `gorm:"column:postal_code;not null"`
	Country       string `gorm:"column:country;not null;default:'United States'"`

	DeliveryInstructions string `gorm:"column:delivery_instructions;not null;default:''"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// User is the canonical identity entity. Email is the sole login identifier.
type User struct {
	ID           uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string        `gorm:"column:email;type:text;not null;uniqueIndex:users_email_key"`
	PasswordHash string        `gorm:"column:password_hash;not null"`
	FirstName    string        `gorm:"column:first_name;not null;default:''"`
	LastName     string        `gorm:"column:last_name;not null;default:''"`
	PhoneNumber  *string       `gorm:"column:phone_number"`
	IsActive     bool          `gorm:"column:is_active;not null"`
	IsStaff      bool          `gorm:"column:is_staff;not null"`
	IsSuperuser  bool          `gorm:"column:is_superuser;not null"`
	IsVerified   bool          `gorm:"column:is_verified;not null"`
	DateOfBirth  *time.Time    `gorm:"column:date_of_birth;type:date"`
	Gender       *enums.Gender `gorm:"column:gender;type:text"`

	NewsletterSubscription bool `gorm:"column:newsletter_subscription;not null"`
	MarketingEmails        bool `gorm:"column:marketing_emails;not null"`

	DateJoined  time.Time  `gorm:"column:date_joined;autoCreateTime"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Profile   *UserProfile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Addresses []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Activity  []UserActivity `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FullName returns "first last", falling back to the email.
func (u User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Email
	}
	return full
}

// ShortName returns the first name or the email's local part.
func (u User) ShortName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

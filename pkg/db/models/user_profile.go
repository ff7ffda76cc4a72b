package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// UserProfile is the 1-1 extension record for a user.
type UserProfile struct {
	ID         uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID               `gorm:"column:user_id;type:uuid;not null;uniqueIndex:user_profiles_user_id_key"`
	AvatarURL  *string                 `gorm:"column:avatar_url"`
	Bio        string                  `gorm:"column:bio;not null;default:''"`
	Website    string                  `gorm:"column:website;not null;default:''"`
	Location   string                  `gorm:"column:location;not null;default:''"`
	Instagram  string                  `gorm:"column:instagram;not null;default:''"`
	Twitter    string                  `gorm:"column:twitter;not null;default:''"`
	Facebook   string                  `gorm:"column:facebook;not null;default:''"`
	Visibility enums.ProfileVisibility `gorm:"column:visibility;type:text;not null;default:'public'"`
	CreatedAt  time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

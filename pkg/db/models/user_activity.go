package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// UserActivity is an append-only event record. Rows are never updated or
// deleted in normal operation.
type UserActivity struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID          `gorm:"column:user_id;type:uuid;not null;index:user_activity_user_ts_idx,priority:1"`
	ActivityType enums.ActivityType `gorm:"column:activity_type;type:text;not null;index:user_activity_type_idx"`
	Description  string             `gorm:"column:description;not null;default:''"`
	Metadata     datatypes.JSONMap  `gorm:"column:metadata"`
	IPAddress    *string            `gorm:"column:ip_address"`
	UserAgent    string             `gorm:"column:user_agent;not null;default:''"`
	Timestamp    time.Time          `gorm:"column:timestamp;autoCreateTime;index:user_activity_user_ts_idx,priority:2,sort:desc"`
}

// TableName keeps the singular-free name the migrations use.
func (UserActivity) TableName() string {
	return "user_activity"
}

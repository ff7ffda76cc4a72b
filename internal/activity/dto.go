package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
)

// ActivityDTO is the transport shape for a recorded event.
type ActivityDTO struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	ActivityType enums.ActivityType `json:"activity_type"`
	Description  string             `json:"description"`
	Metadata     map[string]any     `json:"metadata,omitempty"`
	IPAddress    *string            `json:"ip_address,omitempty"`
	UserAgent    string             `json:"user_agent"`
	Timestamp    time.Time          `json:"timestamp"`
}

// RecordInput holds the data for one append-only event row.
type RecordInput struct {
	UserID       uuid.UUID          `json:"user_id" validate:"required"`
	ActivityType enums.ActivityType `json:"activity_type" validate:"required"`
	Description  string             `json:"description"`
	Metadata     map[string]any     `json:"metadata,omitempty"`
	IPAddress    *string            `json:"ip_address,omitempty"`
	UserAgent    string             `json:"user_agent"`
}

// ActivityPage is one cursor-paginated slice of a user's event stream.
type ActivityPage struct {
	Items      []ActivityDTO `json:"items"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

func fromModel(a *models.UserActivity) *ActivityDTO {
	if a == nil {
		return nil
	}
	return &ActivityDTO{
		ID:           a.ID,
		UserID:       a.UserID,
		ActivityType: a.ActivityType,
		Description:  a.Description,
		Metadata:     map[string]any(a.Metadata),
		IPAddress:    a.IPAddress,
		UserAgent:    a.UserAgent,
		Timestamp:    a.Timestamp,
	}
}

func (r RecordInput) toModel() *models.UserActivity {
	return &models.UserActivity{
		UserID:       r.UserID,
		ActivityType: r.ActivityType,
		Description:  r.Description,
		Metadata:     datatypes.JSONMap(r.Metadata),
		IPAddress:    r.IPAddress,
		UserAgent:    r.UserAgent,
	}
}

package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trendoralabs/trendora-backend/pkg/db"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
	"github.com/trendoralabs/trendora-backend/pkg/logger"
	"github.com/trendoralabs/trendora-backend/pkg/pagination"
)

// Service exposes append and read access to the user activity stream.
type Service interface {
	Record(ctx context.Context, input RecordInput) (*ActivityDTO, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int, cursor string) (*ActivityPage, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo Repository
	Log  *logger.Logger
}

type service struct {
	repo Repository
	log  *logger.Logger
}

// NewService builds an activity service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("activity repository required")
	}
	return &service{repo: params.Repo, log: params.Log}, nil
}

func (s *service) Record(ctx context.Context, input RecordInput) (*ActivityDTO, error) {
	if input.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if !input.ActivityType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown activity type").
			WithDetails(map[string]string{"activity_type": input.ActivityType.String()})
	}

	event, err := s.repo.Create(ctx, input.toModel())
	if err != nil {
		return nil, db.Translate(err, "record activity")
	}
	return fromModel(event), nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, limit int, cursor string) (*ActivityPage, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	parsed, err := pagination.ParseCursor(cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	pageSize := pagination.NormalizeLimit(limit)
	rows, err := s.repo.ListByUser(ctx, userID, pagination.LimitWithBuffer(limit), parsed)
	if err != nil {
		return nil, db.Translate(err, "list activity")
	}

	page := &ActivityPage{Items: make([]ActivityDTO, 0, len(rows))}
	hasMore := len(rows) > pageSize
	if hasMore {
		rows = rows[:pageSize]
	}
	for i := range rows {
		page.Items = append(page.Items, *fromModel(&rows[i]))
	}
	if hasMore {
		last := rows[len(rows)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.Timestamp,
			ID:        last.ID,
		})
	}
	return page, nil
}

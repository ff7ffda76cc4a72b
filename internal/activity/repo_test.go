package activity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	"github.com/trendoralabs/trendora-backend/pkg/enums"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
)

func setupActivityTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS user_activity (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  activity_type TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  metadata TEXT,
  ip_address TEXT,
  user_agent TEXT NOT NULL DEFAULT '',
  timestamp DATETIME
);`
	require.NoError(t, conn.Exec(ddl).Error)
	return conn
}

func newActivityService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: NewRepository(conn)})
	require.NoError(t, err)
	return svc
}

func TestRecordRejectsUnknownType(t *testing.T) {
	conn := setupActivityTestDB(t)
	svc := newActivityService(t, conn)

	_, err := svc.Record(context.Background(), RecordInput{
		UserID:       uuid.New(),
		ActivityType: enums.ActivityType("teleport"),
	})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestRecordPersistsMetadata(t *testing.T) {
	conn := setupActivityTestDB(t)
	svc := newActivityService(t, conn)
	ctx := context.Background()
	userID := uuid.New()

	ip := "203.0.113.9"
	recorded, err := svc.Record(ctx, RecordInput{
		UserID:       userID,
		ActivityType: enums.ActivityTypeSearch,
		Description:  "searched for sneakers",
		Metadata:     map[string]any{"query": "sneakers", "results": float64(12)},
		IPAddress:    &ip,
		UserAgent:    "test-agent",
	})
	require.NoError(t, err)
	require.Equal(t, enums.ActivityTypeSearch, recorded.ActivityType)

	page, err := svc.ListByUser(ctx, userID, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "sneakers", page.Items[0].Metadata["query"])
	require.Equal(t, "test-agent", page.Items[0].UserAgent)
}

func TestListByUserOrdersAndPaginates(t *testing.T) {
	conn := setupActivityTestDB(t)
	repo := NewRepository(conn)
	svc := newActivityService(t, conn)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		event := &models.UserActivity{
			UserID:       userID,
			ActivityType: enums.ActivityTypeProductView,
			Description:  fmt.Sprintf("view %d", i),
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		}
		_, err := repo.Create(ctx, event)
		require.NoError(t, err)
	}

	first, err := svc.ListByUser(ctx, userID, 3, "")
	require.NoError(t, err)
	require.Len(t, first.Items, 3)
	require.NotEmpty(t, first.NextCursor)
	require.Equal(t, "view 4", first.Items[0].Description)
	require.Equal(t, "view 2", first.Items[2].Description)

	second, err := svc.ListByUser(ctx, userID, 3, first.NextCursor)
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	require.Empty(t, second.NextCursor)
	require.Equal(t, "view 1", second.Items[0].Description)
	require.Equal(t, "view 0", second.Items[1].Description)
}

func TestListByUserRejectsBadCursor(t *testing.T) {
	conn := setupActivityTestDB(t)
	svc := newActivityService(t, conn)

	_, err := svc.ListByUser(context.Background(), uuid.New(), 10, "!!not-base64!!")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

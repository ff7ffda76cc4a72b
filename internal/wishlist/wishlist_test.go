package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trendoralabs/trendora-backend/pkg/db/models"
	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
)

func setupWishlistTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  sku TEXT NOT NULL UNIQUE,
  category_id TEXT NOT NULL,
  price TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE IF NOT EXISTS wishlist_items (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at DATETIME,
  UNIQUE (user_id, product_id)
);`

	for _, ddl := range []string{products, items} {
		require.NoError(t, conn.Exec(ddl).Error)
	}
	return conn
}

func seedWishlistProduct(t *testing.T, conn *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, conn.Exec(
		`INSERT INTO products (id, name, slug, sku, category_id, price)
		 VALUES (?, 'Item', ?, ?, ?, '25.00')`,
		id.String(), "item-"+id.String(), "SKU-"+id.String(), uuid.NewString(),
	).Error)
	return id
}

func newWishlistService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: NewRepository(conn)})
	require.NoError(t, err)
	return svc
}

func TestAddRequiresExistingProduct(t *testing.T) {
	conn := setupWishlistTestDB(t)
	svc := newWishlistService(t, conn)

	_, err := svc.Add(context.Background(), uuid.New(), uuid.New())
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestAddDuplicatePair(t *testing.T) {
	conn := setupWishlistTestDB(t)
	svc := newWishlistService(t, conn)
	ctx := context.Background()
	userID := uuid.New()
	productID := seedWishlistProduct(t, conn)

	_, err := svc.Add(ctx, userID, productID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, userID, productID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUniqueConstraint))
}

func TestRemove(t *testing.T) {
	conn := setupWishlistTestDB(t)
	svc := newWishlistService(t, conn)
	ctx := context.Background()
	userID := uuid.New()
	productID := seedWishlistProduct(t, conn)

	_, err := svc.Add(ctx, userID, productID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, userID, productID))

	err = svc.Remove(ctx, userID, productID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestListNewestFirst(t *testing.T) {
	conn := setupWishlistTestDB(t)
	repo := NewRepository(conn)
	svc := newWishlistService(t, conn)
	ctx := context.Background()
	userID := uuid.New()

	older := seedWishlistProduct(t, conn)
	newer := seedWishlistProduct(t, conn)

	base := time.Now().UTC().Add(-time.Hour)
	_, err := repo.Create(ctx, &models.WishlistItem{
		UserID: userID, ProductID: older, CreatedAt: base,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.WishlistItem{
		UserID: userID, ProductID: newer, CreatedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, newer, rows[0].ProductID)
	require.Equal(t, older, rows[1].ProductID)
}

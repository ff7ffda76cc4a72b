package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
)

type gormTxRunner struct {
	conn *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.conn.WithContext(ctx).Transaction(fn)
}

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT,
  parent_id TEXT,
  meta_title TEXT NOT NULL DEFAULT '',
  meta_description TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  featured INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	brands := `
CREATE TABLE IF NOT EXISTS brands (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  logo_url TEXT,
  website TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  featured INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	tags := `
CREATE TABLE IF NOT EXISTS tags (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  slug TEXT NOT NULL UNIQUE,
  color TEXT NOT NULL DEFAULT '#007bff',
  created_at DATETIME
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  sku TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  short_description TEXT NOT NULL DEFAULT '',
  category_id TEXT NOT NULL,
  brand_id TEXT,
  price TEXT NOT NULL,
  compare_price TEXT,
  cost_price TEXT,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  stock_status TEXT NOT NULL DEFAULT 'in_stock',
  track_inventory INTEGER NOT NULL DEFAULT 1,
  allow_backorders INTEGER NOT NULL DEFAULT 0,
  weight TEXT, length TEXT, width TEXT, height TEXT,
  meta_title TEXT NOT NULL DEFAULT '',
  meta_description TEXT NOT NULL DEFAULT '',
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_digital INTEGER NOT NULL DEFAULT 0,
  requires_shipping INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`

	for _, ddl := range []string{categories, brands, tags, products} {
		require.NoError(t, conn.Exec(ddl).Error)
	}
	return conn
}

func newCatalogService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo: NewRepository(conn),
		Tx:   gormTxRunner{conn: conn},
	})
	require.NoError(t, err)
	return svc
}

func seedProduct(t *testing.T, conn *gorm.DB, categoryID uuid.UUID, brandID *uuid.UUID, active bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	var brand any
	if brandID != nil {
		brand = brandID.String()
	}
	require.NoError(t, conn.Exec(
		`INSERT INTO products (id, name, slug, sku, category_id, brand_id, price, is_active)
		 VALUES (?, 'Item', ?, ?, ?, ?, '10.00', ?)`,
		id.String(), "item-"+id.String(), "SKU-"+id.String(), categoryID.String(), brand, active,
	).Error)
	return id
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Men's Shoes!!"})
	require.NoError(t, err)
	require.Equal(t, "mens-shoes", created.Slug)
	require.True(t, created.IsActive)

	found, err := svc.GetCategoryBySlug(ctx, "mens-shoes")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
}

func TestCreateCategorySlugCollision(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Shoes"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "SHOES ", Slug: "shoes"})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUniqueConstraint))
}

func TestAssignParentRejectsSelfAndCycle(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	root, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Clothing"})
	require.NoError(t, err)
	child, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Outerwear", ParentID: &root.ID})
	require.NoError(t, err)
	grandchild, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Parkas", ParentID: &child.ID})
	require.NoError(t, err)

	err = svc.AssignParent(ctx, root.ID, &root.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	err = svc.AssignParent(ctx, root.ID, &grandchild.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	// Moving a leaf under another branch stays legal.
	other, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Accessories"})
	require.NoError(t, err)
	require.NoError(t, svc.AssignParent(ctx, grandchild.ID, &other.ID))

	moved, err := svc.GetCategory(ctx, grandchild.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	require.Equal(t, other.ID, *moved.ParentID)

	require.NoError(t, svc.AssignParent(ctx, grandchild.ID, nil))
	detached, err := svc.GetCategory(ctx, grandchild.ID)
	require.NoError(t, err)
	require.Nil(t, detached.ParentID)
}

func TestDeleteCategoryProtectedWhileReferenced(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Footwear"})
	require.NoError(t, err)
	seedProduct(t, conn, category.ID, nil, true)

	err = svc.DeleteCategory(ctx, category.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeReferentialIntegrity))

	require.NoError(t, conn.Exec(`DELETE FROM products`).Error)
	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	_, err = svc.GetCategory(ctx, category.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestCategoryProductCountActiveOnly(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Bags"})
	require.NoError(t, err)
	seedProduct(t, conn, category.ID, nil, true)
	seedProduct(t, conn, category.ID, nil, true)
	seedProduct(t, conn, category.ID, nil, false)

	count, err := svc.CategoryProductCount(ctx, category.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestDeleteBrandNullsProducts(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Watches"})
	require.NoError(t, err)
	brand, err := svc.CreateBrand(ctx, CreateBrandInput{Name: "Acme"})
	require.NoError(t, err)

	productID := seedProduct(t, conn, category.ID, &brand.ID, true)

	require.NoError(t, svc.DeleteBrand(ctx, brand.ID))

	var brandRef *string
	require.NoError(t, conn.Raw(
		`SELECT brand_id FROM products WHERE id = ?`, productID.String(),
	).Scan(&brandRef).Error)
	require.Nil(t, brandRef)

	err = svc.DeleteBrand(ctx, brand.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestCreateTagDefaultsColor(t *testing.T) {
	conn := setupCatalogTestDB(t)
	svc := newCatalogService(t, conn)
	ctx := context.Background()

	tag, err := svc.CreateTag(ctx, CreateTagInput{Name: "New Arrival"})
	require.NoError(t, err)
	require.Equal(t, "new-arrival", tag.Slug)
	require.Equal(t, "#007bff", tag.Color)

	_, err = svc.CreateTag(ctx, CreateTagInput{Name: "Sale", Slug: "new-arrival"})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUniqueConstraint))
}

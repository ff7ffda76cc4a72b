package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}

func TestInitSchemaCoversAllTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}

	var combined strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		if err != nil {
			t.Fatalf("read migration %s: %v", e.Name(), err)
		}
		combined.Write(b)
	}
	sql := combined.String()

	tables := []string{
		"users", "user_profiles", "addresses", "user_activity", "orders",
		"categories", "brands", "tags", "products", "product_tags",
		"product_images", "product_variants", "product_attributes",
		"product_attribute_values", "product_reviews", "wishlist_items",
	}
	for _, table := range tables {
		if !strings.Contains(sql, "CREATE TABLE "+table+" (") {
			t.Fatalf("migration missing CREATE TABLE for %s", table)
		}
	}

	// the two flag invariants get partial unique backstops
	for _, index := range []string{"addresses_user_type_default_key", "product_images_main_key"} {
		if !strings.Contains(sql, index) {
			t.Fatalf("migration missing partial unique index %s", index)
		}
	}
}

func TestCreateSQLMigrationSanitizesName(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Wishlist Notes!")
	if err != nil {
		t.Fatalf("CreateSQLMigration returned error: %v", err)
	}
	if !strings.HasSuffix(path, "_add_wishlist_notes.sql") {
		t.Fatalf("unexpected migration path %q", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration failed validation: %v", err)
	}
}

package db

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	pkgerrors "github.com/trendoralabs/trendora-backend/pkg/errors"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "products_slug_key" (SQLSTATE 23505)`)
	if !IsUniqueViolation(pgErr, "") {
		t.Fatal("expected postgres duplicate key to match")
	}
	if !IsUniqueViolation(pgErr, "products_slug_key") {
		t.Fatal("expected constraint-scoped match")
	}
	if IsUniqueViolation(pgErr, "users_email_key") {
		t.Fatal("expected mismatch on another constraint name")
	}

	sqliteErr := errors.New("UNIQUE constraint failed: products.sku")
	if !IsUniqueViolation(sqliteErr, "") {
		t.Fatal("expected sqlite duplicate to match")
	}

	if IsUniqueViolation(nil, "") {
		t.Fatal("nil should not match")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := errors.New(`ERROR: update or delete on table "categories" violates foreign key constraint "products_category_id_fkey"`)
	if !IsForeignKeyViolation(pgErr) {
		t.Fatal("expected postgres fk violation to match")
	}
	sqliteErr := errors.New("FOREIGN KEY constraint failed")
	if !IsForeignKeyViolation(sqliteErr) {
		t.Fatal("expected sqlite fk violation to match")
	}
}

func TestTranslate(t *testing.T) {
	if Translate(nil, "noop") != nil {
		t.Fatal("nil error should stay nil")
	}

	cases := []struct {
		err  error
		code pkgerrors.Code
	}{
		{gorm.ErrRecordNotFound, pkgerrors.CodeNotFound},
		{errors.New("duplicate key value violates unique constraint"), pkgerrors.CodeUniqueConstraint},
		{errors.New("FOREIGN KEY constraint failed"), pkgerrors.CodeReferentialIntegrity},
		{errors.New("connection refused"), pkgerrors.CodeDependency},
	}
	for _, tc := range cases {
		got := Translate(tc.err, "write record")
		if !pkgerrors.IsCode(got, tc.code) {
			t.Fatalf("expected %s for %v, got %v", tc.code, tc.err, got)
		}
		if !errors.Is(got, tc.err) {
			t.Fatalf("expected cause %v to be preserved", tc.err)
		}
	}
}

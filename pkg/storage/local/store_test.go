package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveWritesBlobAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, "https://media.example.com/")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	url, err := store.Save(context.Background(), "products/abc/main.png", []byte("blob"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if url != "https://media.example.com/products/abc/main.png" {
		t.Fatalf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "products", "abc", "main.png"))
	if err != nil {
		t.Fatalf("reading blob: %v", err)
	}
	if string(data) != "blob" {
		t.Fatalf("unexpected blob contents %q", data)
	}
}

func TestSaveRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir(), "https://media.example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := store.Save(context.Background(), "../escape.txt", []byte("x")); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
}

func TestNewRequiresRoot(t *testing.T) {
	if _, err := New("", "https://media.example.com"); err == nil {
		t.Fatal("expected error for empty root")
	}
}

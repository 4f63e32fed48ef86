// Package testutil provides shared test helpers for template trees and output roots.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/tfphases/internal/storage"
)

// TestStore creates a temporary output root with a storage.FS.
func TestStore(t *testing.T) *storage.FS {
	t.Helper()
	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return store
}

// WriteTree writes files (slash-separated path → content) under root.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// ReadOut reads a file from the store by its root-relative path.
func ReadOut(t *testing.T, store *storage.FS, rel string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return data
}

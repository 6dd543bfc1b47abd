// Package testutil provides shared test helpers for setting up contact stores.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/starford/mannaz/internal/storage"
)

// TestStore creates a temporary backing file seeded with an empty
// collection and returns its provider.
func TestStore(t *testing.T) *storage.File {
	t.Helper()
	store, err := storage.NewFile(filepath.Join(t.TempDir(), "db", "contacts.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Seed([]byte("[]")); err != nil {
		t.Fatal(err)
	}
	return store
}

// TestStoreWith creates a temporary backing file with the given raw contents.
func TestStoreWith(t *testing.T, contents []byte) *storage.File {
	t.Helper()
	store, err := storage.NewFile(filepath.Join(t.TempDir(), "db", "contacts.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Write(contents); err != nil {
		t.Fatal(err)
	}
	return store
}

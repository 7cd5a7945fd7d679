// Package testutil provides shared test helpers for setting up note
// and output directories and search-index databases.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/storage"
)

// TestDB creates a temporary SQLite database that is automatically
// cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestDirs creates temporary source and output directories.
func TestDirs(t *testing.T) (*storage.NoteDir, *storage.PageDir) {
	t.Helper()
	notes, err := storage.NewNoteDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	pages, err := storage.NewPageDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return notes, pages
}

// DiscardLogger returns a logger whose output is thrown away.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package index

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/ansuz/internal/storage"
)

func testSource(t *testing.T) *storage.NoteDir {
	t.Helper()
	n, err := storage.NewNoteDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSync_IndexesNotes(t *testing.T) {
	db := testDB(t)
	src := testSource(t)
	if err := os.WriteFile(filepath.Join(src.Root(), "a.md"), []byte("# Alpha\nbody"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Sync(db, src, discard()); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := checksums["a.md"]; !ok {
		t.Error("a.md not indexed")
	}

	results, err := db.Search("Alpha", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Alpha" {
		t.Errorf("results = %v", results)
	}
}

func TestSync_RemovesStaleEntries(t *testing.T) {
	db := testDB(t)
	src := testSource(t)
	path := filepath.Join(src.Root(), "gone.md")
	if err := os.WriteFile(path, []byte("# Gone"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Sync(db, src, discard()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := Sync(db, src, discard()); err != nil {
		t.Fatalf("second Sync: %v", err)
	}

	checksums, _ := db.AllChecksums()
	if _, ok := checksums["gone.md"]; ok {
		t.Error("stale entry not removed")
	}
}

func TestSync_TitleIgnoresFrontMatter(t *testing.T) {
	db := testDB(t)
	src := testSource(t)
	content := "---\ntitle: Metadata\n---\n# Body Title\ntext"
	if err := os.WriteFile(filepath.Join(src.Root(), "n.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Sync(db, src, discard()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	results, err := db.Search("Body", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Title != "Body Title" {
		t.Errorf("results = %v", results)
	}
}

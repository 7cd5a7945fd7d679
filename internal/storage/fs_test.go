package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func tempNoteDir(t *testing.T) *NoteDir {
	t.Helper()
	n, err := NewNoteDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewNoteDir: %v", err)
	}
	return n
}

func tempPageDir(t *testing.T) *PageDir {
	t.Helper()
	p, err := NewPageDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewPageDir: %v", err)
	}
	return p
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNoteDirList_FiltersByExtension(t *testing.T) {
	n := tempNoteDir(t)
	writeFile(t, n.Root(), "a.md", "alpha")
	writeFile(t, n.Root(), "B.MD", "beta")
	writeFile(t, n.Root(), "c.txt", "not a note")
	writeFile(t, n.Root(), "noext", "not a note")

	metas, err := n.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("len(metas) = %d, want 2", len(metas))
	}
	seen := map[string]string{}
	for _, m := range metas {
		seen[m.Name] = m.Stem
	}
	if seen["a.md"] != "a" || seen["B.MD"] != "B" {
		t.Errorf("metas = %v", seen)
	}
}

func TestNoteDirList_SkipsDirectories(t *testing.T) {
	n := tempNoteDir(t)
	// A directory whose name ends in .md must not be listed, and notes
	// inside sub-directories are out of scope (flat source contract).
	if err := os.MkdirAll(filepath.Join(n.Root(), "folder.md"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(n.Root(), "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, n.Root(), filepath.Join("sub", "nested.md"), "nested")

	metas, err := n.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 0 {
		t.Errorf("metas = %v, want none", metas)
	}
}

func TestNoteDirList_ChecksumAndModTime(t *testing.T) {
	n := tempNoteDir(t)
	writeFile(t, n.Root(), "a.md", "alpha")

	metas, err := n.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("len(metas) = %d", len(metas))
	}
	if metas[0].Checksum == "" {
		t.Error("checksum empty")
	}
	if metas[0].UpdatedAt.IsZero() {
		t.Error("mtime zero")
	}
}

func TestNoteDirRead_RejectsTraversal(t *testing.T) {
	n := tempNoteDir(t)
	if _, err := n.Read("../outside.md"); err == nil {
		t.Error("expected traversal error")
	}
	if _, err := n.Read("/etc/passwd"); err == nil {
		t.Error("expected absolute-path error")
	}
}

func TestNoteDirEnsure_CreatesDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	n, err := NewNoteDir(root)
	if err != nil {
		t.Fatalf("NewNoteDir: %v", err)
	}
	if err := n.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}

func TestPageDirWriteListModTimeRemove(t *testing.T) {
	p := tempPageDir(t)
	if err := p.Write("a.html", []byte("<html></html>")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pages, err := p.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pages) != 1 || pages[0] != "a.html" {
		t.Fatalf("pages = %v", pages)
	}

	if _, err := p.ModTime("a.html"); err != nil {
		t.Errorf("ModTime: %v", err)
	}

	if err := p.Remove("a.html"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	pages, _ = p.List()
	if len(pages) != 0 {
		t.Errorf("pages after remove = %v", pages)
	}
}

func TestPageDirList_IgnoresNonPages(t *testing.T) {
	p := tempPageDir(t)
	writeFile(t, p.Root(), "a.html", "page")
	writeFile(t, p.Root(), "style.css", "css")

	pages, err := p.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pages) != 1 || pages[0] != "a.html" {
		t.Errorf("pages = %v", pages)
	}
}

func TestPageDirWrite_LeavesNoTempFiles(t *testing.T) {
	p := tempPageDir(t)
	if err := p.Write("a.html", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(p.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("unexpected leftovers: %v", entries)
	}
}

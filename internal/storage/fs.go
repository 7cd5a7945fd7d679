package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/models"
)

// NoteExt is the source note extension, matched case-insensitively.
const NoteExt = ".md"

// PageExt is the generated page extension.
const PageExt = ".html"

// NoteDir implements NoteSource backed by a flat directory on the local
// file system.
type NoteDir struct {
	root string
}

// NewNoteDir creates a NoteSource rooted at the given directory. The
// directory does not have to exist yet; call Ensure before listing.
func NewNoteDir(root string) (*NoteDir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve notes root: %w", err)
	}
	return &NoteDir{root: abs}, nil
}

// Root returns the absolute path of the source directory.
func (n *NoteDir) Root() string { return n.root }

// Ensure creates the source directory if it is absent.
func (n *NoteDir) Ensure() error {
	if err := os.MkdirAll(n.root, 0o755); err != nil {
		return fmt.Errorf("storage: create notes dir: %w", err)
	}
	return nil
}

// List returns metadata for every regular file directly in the source
// directory whose extension case-insensitively equals NoteExt.
// Sub-directories (even ones named like notes) and files with other
// extensions are skipped silently; an unreadable note aborts the listing.
func (n *NoteDir) List() ([]models.NoteMetadata, error) {
	entries, err := os.ReadDir(n.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list notes: %w", err)
	}
	var out []models.NoteMetadata
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), NoteExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("storage: stat %s: %w", name, err)
		}
		data, err := os.ReadFile(filepath.Join(n.root, name))
		if err != nil {
			return nil, fmt.Errorf("storage: read %s: %w", name, err)
		}
		out = append(out, models.NoteMetadata{
			Name:      name,
			Stem:      strings.TrimSuffix(name, filepath.Ext(name)),
			Checksum:  checksum.Sum(data),
			UpdatedAt: info.ModTime(),
		})
	}
	return out, nil
}

// Read returns the raw bytes of the named note.
func (n *NoteDir) Read(name string) ([]byte, error) {
	abs, err := safeJoin(n.root, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage: read %s: %w", name, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("storage: read %s: %w", name, err)
	}
	return data, nil
}

// PageDir implements PageStore backed by a flat output directory.
type PageDir struct {
	root string
}

// NewPageDir creates a PageStore rooted at the given directory.
func NewPageDir(root string) (*PageDir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve output root: %w", err)
	}
	return &PageDir{root: abs}, nil
}

// Root returns the absolute path of the output directory.
func (p *PageDir) Root() string { return p.root }

// Ensure creates the output directory if it is absent.
func (p *PageDir) Ensure() error {
	if err := os.MkdirAll(p.root, 0o755); err != nil {
		return fmt.Errorf("storage: create output dir: %w", err)
	}
	return nil
}

// List returns the filenames of every regular .html page in the output
// directory.
func (p *PageDir) List() ([]string, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list pages: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.HasSuffix(e.Name(), PageExt) {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}

// Write atomically writes a page: tmp file → fsync → rename. A crash
// mid-write leaves the previous page (or no page) in place, never a
// half-written one.
func (p *PageDir) Write(name string, content []byte) error {
	abs, err := safeJoin(p.root, name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(p.root, ".ansuz-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Remove deletes a page from the output directory.
func (p *PageDir) Remove(name string) error {
	abs, err := safeJoin(p.root, name)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("storage: remove %s: %w", name, err)
	}
	return nil
}

// ModTime returns the page file's last-modified time.
func (p *PageDir) ModTime(name string) (time.Time, error) {
	abs, err := safeJoin(p.root, name)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: stat %s: %w", name, err)
	}
	return info.ModTime(), nil
}

// safeJoin resolves a file name against root and rejects any result
// that escapes it (directory traversal).
func safeJoin(root, name string) (string, error) {
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", name)
	}
	joined := filepath.Join(root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes root: %s", name)
	}
	return abs, nil
}

// Package site implements the build pipeline: converting source notes
// to HTML pages, pruning orphaned pages, and generating the index.
package site

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/starford/ansuz/internal/storage"
)

// IndexStem is the reserved stem of the index page. It is exempt from
// orphan pruning and always regenerated last.
const IndexStem = "index"

// IndexFile is the reserved index page filename.
const IndexFile = IndexStem + storage.PageExt

// Builder runs one build pass over a note source and page store.
type Builder struct {
	notes  storage.NoteSource
	pages  storage.PageStore
	logger *slog.Logger
}

// NewBuilder creates a Builder over the given directories.
func NewBuilder(notes storage.NoteSource, pages storage.PageStore, logger *slog.Logger) *Builder {
	return &Builder{notes: notes, pages: pages, logger: logger}
}

// registry holds the title and modified-time mappings produced during
// conversion and consumed by the index builder. Both maps are keyed by
// output filename, rebuilt fully on every run, and discarded afterwards.
type registry struct {
	titles   map[string]string
	modified map[string]time.Time
}

func newRegistry() *registry {
	return &registry{
		titles:   make(map[string]string),
		modified: make(map[string]time.Time),
	}
}

// Build runs one synchronous build pass, strictly ordered: ensure
// directories exist, list notes, convert, prune orphans, build the
// index. Pruning happens before the index build so the index never
// links to a just-deleted page; conversion happens before both so new
// pages are visible to the enumeration.
func (b *Builder) Build() error {
	start := time.Now()

	if err := b.notes.Ensure(); err != nil {
		return fmt.Errorf("site: %w", err)
	}
	if err := b.pages.Ensure(); err != nil {
		return fmt.Errorf("site: %w", err)
	}

	metas, err := b.notes.List()
	if err != nil {
		return fmt.Errorf("site: %w", err)
	}

	reg, err := b.convertAll(metas)
	if err != nil {
		return err
	}

	b.pruneOrphans(metas)

	if err := b.buildIndexPage(reg); err != nil {
		return err
	}

	b.logger.Info("build: completed",
		slog.Int("notes", len(metas)),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

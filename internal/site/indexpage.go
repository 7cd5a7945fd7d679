package site

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/storage"
)

// buildIndexPage assembles and writes the index from all current output
// pages. Titles and timestamps come from this run's registry; a page
// absent from the registry (pre-existing output that was not reconverted
// this run) falls back to a title derived from its own filename and its
// own filesystem timestamp. Entries sort by resolved title using plain
// case-sensitive string order; equal titles keep their stable relative
// order.
func (b *Builder) buildIndexPage(reg *registry) error {
	pages, err := b.pages.List()
	if err != nil {
		return fmt.Errorf("site: %w", err)
	}

	var entries []models.PageEntry
	for _, page := range pages {
		if page == IndexFile {
			continue
		}

		title, ok := reg.titles[page]
		if !ok {
			title = render.StemTitle(strings.TrimSuffix(page, storage.PageExt))
		}
		modified, ok := reg.modified[page]
		if !ok {
			modified, err = b.pages.ModTime(page)
			if err != nil {
				b.logger.Warn("index: stat page failed",
					slog.String("page", page),
					slog.String("error", err.Error()))
			}
		}

		entries = append(entries, models.PageEntry{
			Filename:   page,
			Title:      title,
			ModifiedAt: modified,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Title < entries[j].Title
	})

	var listing strings.Builder
	for _, e := range entries {
		listing.WriteString(render.IndexEntry(e))
	}

	doc := render.IndexDoc(render.IndexData{
		Title:   render.IndexTitle,
		CSS:     render.TemplateCSS,
		Entries: listing.String(),
		Script:  render.SearchScript,
	})
	if err := b.pages.Write(IndexFile, []byte(doc)); err != nil {
		return fmt.Errorf("site: %w", err)
	}

	b.logger.Debug("index: written", slog.Int("entries", len(entries)))
	return nil
}

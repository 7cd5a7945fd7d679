package site

import (
	"fmt"
	"log/slog"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/render"
)

// convertAll renders one HTML page per note and records each page's
// title and source modification time in a fresh registry. Notes whose
// stems collide (extensions differing only by case) silently overwrite;
// last processed wins. Read and write failures are fatal for the run.
func (b *Builder) convertAll(metas []models.NoteMetadata) (*registry, error) {
	reg := newRegistry()

	for _, m := range metas {
		raw, err := b.notes.Read(m.Name)
		if err != nil {
			return nil, fmt.Errorf("site: %w", err)
		}

		// Only the body after front matter is rendered and scanned
		// for a title; metadata must never leak into output.
		body := render.StripFrontMatter(raw)

		fragment, err := render.ToHTML(body)
		if err != nil {
			return nil, fmt.Errorf("site: convert %s: %w", m.Name, err)
		}

		title := render.ResolveTitle(m.Stem, string(body))

		doc := render.PageDoc(render.PageData{
			Title: title,
			CSS:   render.TemplateCSS,
			Body:  fragment,
		})
		page := m.PageFile()
		if err := b.pages.Write(page, []byte(doc)); err != nil {
			return nil, fmt.Errorf("site: %w", err)
		}

		reg.titles[page] = title
		reg.modified[page] = m.UpdatedAt

		b.logger.Debug("build: converted",
			slog.String("note", m.Name),
			slog.String("page", page),
			slog.String("title", title))
	}

	return reg, nil
}

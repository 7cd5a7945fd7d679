package index

import (
	"log/slog"

	"github.com/starford/ansuz/internal/render"
	"github.com/starford/ansuz/internal/storage"
)

// Sync walks the source directory and brings the search index up to
// date: new and changed notes are parsed and upserted (unchanged ones
// are skipped by checksum), and notes removed from disk are deleted
// from the index.
func Sync(db NoteIndex, src storage.NoteSource, logger *slog.Logger) error {
	metas, err := src.List()
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Name] = struct{}{}

		if checksums[m.Name] == m.Checksum {
			continue
		}

		data, err := src.Read(m.Name)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("note", m.Name), slog.String("error", err.Error()))
			continue
		}

		body := render.StripFrontMatter(data)
		row := NoteRow{
			Name:      m.Name,
			Title:     render.ResolveTitle(m.Stem, string(body)),
			Checksum:  m.Checksum,
			UpdatedAt: m.UpdatedAt,
		}
		if err := db.UpsertNote(row, string(body)); err != nil {
			logger.Warn("sync: index failed", slog.String("note", m.Name), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("note", m.Name))
		}
	}

	// Remove stale entries: indexed names with no note on disk.
	for name := range checksums {
		if _, ok := disk[name]; !ok {
			if err := db.DeleteNote(name); err != nil {
				logger.Warn("sync: delete failed", slog.String("note", name), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("note", name))
			}
		}
	}

	return nil
}

package site

import (
	"log/slog"
	"strings"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/storage"
)

// pruneOrphans deletes output pages whose source note no longer exists.
// The orphan set is the asymmetric difference existing − live: only
// pre-existing output with no backing note is at risk. A live note that
// failed to convert has no output file yet, so nothing of its can be
// deleted. The reserved index stem is always treated as live.
//
// Cleanup is best-effort: per-file deletion failures are logged and the
// build continues with the page left in place.
func (b *Builder) pruneOrphans(metas []models.NoteMetadata) {
	live := map[string]struct{}{IndexStem: {}}
	for _, m := range metas {
		live[m.Stem] = struct{}{}
	}

	existing, err := b.pages.List()
	if err != nil {
		b.logger.Warn("prune: list pages failed", slog.String("error", err.Error()))
		return
	}

	for _, page := range existing {
		stem := strings.TrimSuffix(page, storage.PageExt)
		if _, ok := live[stem]; ok {
			continue
		}
		if err := b.pages.Remove(page); err != nil {
			b.logger.Warn("prune: remove failed",
				slog.String("page", page),
				slog.String("error", err.Error()))
			continue
		}
		b.logger.Debug("prune: removed orphan", slog.String("page", page))
	}
}

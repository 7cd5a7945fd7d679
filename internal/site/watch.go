package site

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/ansuz/internal/storage"
)

// debounceDelay coalesces bursts of filesystem events (editors often
// fire several per save) into a single rebuild.
const debounceDelay = 200 * time.Millisecond

// Watch runs full builds in response to changes in the notes directory
// until ctx is cancelled. Events are debounced; each trigger runs one
// complete sequential build, and builds never overlap because the loop
// owns the builder. A failed build is logged and watching continues.
func (b *Builder) Watch(ctx context.Context, notesRoot string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(notesRoot); err != nil {
		return err
	}

	b.logger.Info("watch: started", slog.String("root", notesRoot))

	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(debounceDelay)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(debounceDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			b.logger.Info("watch: stopped")
			return nil

		case <-rebuildCh:
			if err := b.Build(); err != nil {
				b.logger.Warn("watch: build failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isNoteEvent(ev) {
				continue
			}
			b.logger.Debug("watch: change",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()))
			scheduleRebuild()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			b.logger.Error("watch: error", slog.String("error", watchErr.Error()))
		}
	}
}

// isNoteEvent reports whether the event concerns a Markdown note. The
// source directory is flat, so only direct children matter.
func isNoteEvent(ev fsnotify.Event) bool {
	return strings.EqualFold(filepath.Ext(ev.Name), storage.NoteExt)
}

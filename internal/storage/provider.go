// Package storage defines the source and output directory abstractions.
package storage

import (
	"time"

	"github.com/starford/ansuz/internal/models"
)

// NoteSource is the interface for reading the flat source directory.
type NoteSource interface {
	// Ensure creates the source directory if it is absent.
	Ensure() error
	// List returns metadata for every regular Markdown file directly in
	// the source directory. Sub-directories and files with other
	// extensions are skipped silently.
	List() ([]models.NoteMetadata, error)
	// Read returns the raw bytes of the named note.
	Read(name string) ([]byte, error)
}

// PageStore is the interface for the generated output directory.
type PageStore interface {
	// Ensure creates the output directory if it is absent.
	Ensure() error
	// List returns the filenames of every generated .html page.
	List() ([]string, error)
	// Write atomically writes a page.
	Write(name string, content []byte) error
	// Remove deletes a page.
	Remove(name string) error
	// ModTime returns the page file's last-modified time.
	ModTime(name string) (time.Time, error)
}

// Package models defines the domain types for Ansuz.
package models

import "time"

// NoteMetadata describes one source Markdown note as seen during a
// directory listing. Stem is the filename without its extension and is
// the stable identity linking a note to its generated page.
type NoteMetadata struct {
	Name      string    `json:"name"`
	Stem      string    `json:"stem"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageFile returns the output filename the note renders to.
func (m NoteMetadata) PageFile() string {
	return m.Stem + ".html"
}

// PageEntry is one row of the generated index listing.
type PageEntry struct {
	Filename   string    `json:"filename"`
	Title      string    `json:"title"`
	ModifiedAt time.Time `json:"modified_at"`
}

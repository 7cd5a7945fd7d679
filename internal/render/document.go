package render

import (
	"html"
	"strings"

	"github.com/starford/ansuz/internal/models"
)

// IndexTitle is the fixed title of the generated index page.
const IndexTitle = "My Notes"

// DateLayout is the human-readable date shown in index entries.
const DateLayout = "January 2, 2006"

// PageData carries everything needed to assemble one note page.
type PageData struct {
	Title string
	CSS   string
	Body  string
}

// PageDoc assembles a complete note page document.
func PageDoc(d PageData) string {
	var b strings.Builder
	writeHead(&b, d.Title, d.CSS)
	b.WriteString("<body>\n")
	b.WriteString(`<a href="index.html" class="back-link">&larr; Back to notes</a>` + "\n")
	b.WriteString(`<div class="note-content">` + "\n")
	b.WriteString(d.Body)
	b.WriteString("</div>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// IndexData carries everything needed to assemble the index page.
type IndexData struct {
	Title   string
	CSS     string
	Entries string
	Script  string
}

// IndexDoc assembles the index document: heading, search input, sorted
// entry listing, hidden no-results placeholder, and the injected search
// script.
func IndexDoc(d IndexData) string {
	var b strings.Builder
	writeHead(&b, d.Title, d.CSS)
	b.WriteString("<body>\n")
	b.WriteString("<h1>" + html.EscapeString(d.Title) + "</h1>\n")
	b.WriteString(`<input type="text" id="search" placeholder="Search notes...">` + "\n")
	b.WriteString(`<ul class="note-list" id="results">` + "\n")
	b.WriteString(d.Entries)
	b.WriteString("</ul>\n")
	b.WriteString(`<p id="no-results" style="display: none">No matching notes.</p>` + "\n")
	b.WriteString(d.Script)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// IndexEntry renders one listing entry: a titled link to the page and
// its modification date.
func IndexEntry(e models.PageEntry) string {
	var b strings.Builder
	b.WriteString(`<li class="note-item">` + "\n")
	b.WriteString(`<div class="note-title"><a href="` + e.Filename + `">` + html.EscapeString(e.Title) + "</a></div>\n")
	b.WriteString(`<div class="note-date">` + e.ModifiedAt.Format(DateLayout) + "</div>\n")
	b.WriteString("</li>\n")
	return b.String()
}

func writeHead(b *strings.Builder, title, css string) {
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString("<style>" + css + "</style>\n")
	b.WriteString("</head>\n")
}

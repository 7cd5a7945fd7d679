// Package render converts note bodies to HTML fragments and assembles
// complete page and index documents.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// engine is the single shared goldmark instance. The extension set is
// fixed and applied together: GFM, heading anchors, syntax highlighting,
// smart punctuation, and newline-to-break conversion. Converting with a
// subset would change how the others parse block boundaries, so the set
// is never configurable per call.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// ToHTML converts a stripped Markdown body into an HTML fragment.
func ToHTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render: convert markdown: %w", err)
	}
	return buf.String(), nil
}

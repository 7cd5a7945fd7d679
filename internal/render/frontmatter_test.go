package render

import (
	"strings"
	"testing"
)

func TestStripFrontMatter_RemovesBlock(t *testing.T) {
	input := []byte("---\ntitle: Secret\ndraft: true\n---\n# Visible\nBody text.\n")
	body := string(StripFrontMatter(input))

	if strings.Contains(body, "Secret") || strings.Contains(body, "draft") {
		t.Errorf("front matter leaked into body: %q", body)
	}
	if strings.Contains(body, "---") {
		t.Errorf("delimiter leaked into body: %q", body)
	}
	if !strings.Contains(body, "# Visible") {
		t.Errorf("body content missing: %q", body)
	}
}

func TestStripFrontMatter_TitleComesFromBodyNotMetadata(t *testing.T) {
	input := []byte("---\ntitle: Metadata Title\n---\n# Real Title\ntext\n")
	body := StripFrontMatter(input)
	title := ResolveTitle("stem", string(body))
	if title != "Real Title" {
		t.Errorf("title = %q, want %q", title, "Real Title")
	}
}

func TestStripFrontMatter_HashLineInsideBlockDoesNotLeak(t *testing.T) {
	input := []byte("---\n# Sneaky Comment\ntitle: x\n---\nplain body\n")
	body := string(StripFrontMatter(input))
	if strings.Contains(body, "Sneaky") {
		t.Errorf("metadata comment leaked: %q", body)
	}
	if ResolveTitle("my-note", body) != "My Note" {
		t.Errorf("title influenced by metadata: %q", ResolveTitle("my-note", body))
	}
}

func TestStripFrontMatter_NotAtFirstLineIsBody(t *testing.T) {
	input := []byte("\n---\ntitle: x\n---\nbody\n")
	body := StripFrontMatter(input)
	if string(body) != string(input) {
		t.Errorf("block after leading blank line must be kept as body")
	}
}

func TestStripFrontMatter_UnterminatedBlockIsBody(t *testing.T) {
	input := []byte("---\ntitle: x\nno closing delimiter\n")
	body := StripFrontMatter(input)
	if string(body) != string(input) {
		t.Errorf("unterminated block must be kept as body")
	}
}

func TestStripFrontMatter_NoBlock(t *testing.T) {
	input := []byte("# Heading\nparagraph\n")
	body := StripFrontMatter(input)
	if string(body) != string(input) {
		t.Errorf("content without front matter changed: %q", body)
	}
}

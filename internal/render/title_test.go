package render

import "testing"

func TestResolveTitle_FirstH1(t *testing.T) {
	title := ResolveTitle("note", "# T\nBody")
	if title != "T" {
		t.Errorf("title = %q, want %q", title, "T")
	}
}

func TestResolveTitle_H1AfterTextStillWins(t *testing.T) {
	title := ResolveTitle("note", "intro paragraph\n# Later Heading\nmore")
	if title != "Later Heading" {
		t.Errorf("title = %q, want %q", title, "Later Heading")
	}
}

func TestResolveTitle_FirstOfMultipleWins(t *testing.T) {
	title := ResolveTitle("note", "# First\ntext\n# Second\n")
	if title != "First" {
		t.Errorf("title = %q, want %q", title, "First")
	}
}

func TestResolveTitle_LeadingSpaceIsNotAHeading(t *testing.T) {
	// The marker must start at column 0.
	title := ResolveTitle("my-note", " # Indented\nbody")
	if title != "My Note" {
		t.Errorf("title = %q, want fallback %q", title, "My Note")
	}
}

func TestResolveTitle_DoubleHashIsNotAHeading(t *testing.T) {
	title := ResolveTitle("my-note", "## Subheading\nbody")
	if title != "My Note" {
		t.Errorf("title = %q, want fallback %q", title, "My Note")
	}
}

func TestResolveTitle_HashWithoutSpaceIsNotAHeading(t *testing.T) {
	title := ResolveTitle("my-note", "#NoSpace\nbody")
	if title != "My Note" {
		t.Errorf("title = %q, want fallback %q", title, "My Note")
	}
}

func TestResolveTitle_EmptyContentFallsBack(t *testing.T) {
	title := ResolveTitle("weekly_status-report", "")
	if title != "Weekly Status Report" {
		t.Errorf("title = %q, want %q", title, "Weekly Status Report")
	}
}

func TestStemTitle(t *testing.T) {
	cases := []struct {
		stem, want string
	}{
		{"hello", "Hello"},
		{"hello-world", "Hello World"},
		{"hello_world", "Hello World"},
		{"mixed-CASE_words", "Mixed Case Words"},
		{"a", "A"},
	}
	for _, c := range cases {
		if got := StemTitle(c.stem); got != c.want {
			t.Errorf("StemTitle(%q) = %q, want %q", c.stem, got, c.want)
		}
	}
}

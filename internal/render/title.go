package render

import (
	"strings"
	"unicode"
)

// ResolveTitle derives a human title for a note. The first line of the
// body that starts at column 0 with `#` followed by a space is the
// title source; later header lines never override it. A line with
// leading whitespace before the `#`, or with `##`, is not a title.
// Without such a line the title falls back to StemTitle(stem).
func ResolveTitle(stem, body string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return StemTitle(stem)
}

// StemTitle converts a filename stem to a display title: `-` and `_`
// become spaces and each word is title-cased (first rune upper, rest
// lower).
func StemTitle(stem string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	words := strings.Fields(replaced)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

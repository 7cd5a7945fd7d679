package render

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

var delim = []byte("---")

// StripFrontMatter removes a leading front matter block (`---` delimited
// key/value metadata) and returns the remaining body. The block must
// open at the very first line; a block preceded by anything, even a
// blank line, is treated as body. A block that cannot be parsed (no
// closing delimiter, invalid YAML) degrades to "no front matter" and
// the whole content is returned as body.
func StripFrontMatter(data []byte) []byte {
	if !opensWithDelimiter(data) {
		return data
	}
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return data
	}
	return body
}

// opensWithDelimiter reports whether the first line is exactly `---`.
func opensWithDelimiter(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return bytes.Equal(bytes.TrimRight(line, "\r"), delim)
}

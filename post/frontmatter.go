package post

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// frontMatter holds the metadata block at the top of a post document.
type frontMatter struct {
	Title     string   `toml:"title"`     // Title of the post
	Timestamp string   `toml:"timestamp"` // Optional, must match the file name
	Image     string   `toml:"image"`     // Cover image URL
	Tags      []string `toml:"tags"`      // Feed categories
}

// fmRegexp is the regular expression used to split out front matter.
var fmRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)

// extractFrontMatter splits the front matter and Markdown content.
func extractFrontMatter(x []byte) (fm, r []byte) {
	subs := fmRegexp.Split(string(x), 3)
	if len(subs) != 3 {
		return nil, x
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, x
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2]))
}

// decodeFrontMatter unmarshals fm, rejecting keys it does not know so that
// typos surface when the site starts.
func decodeFrontMatter(fm []byte, dst *frontMatter) error {
	return toml.NewDecoder(bytes.NewReader(fm)).DisallowUnknownFields().Decode(dst)
}

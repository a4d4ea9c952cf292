package blog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformedPath is returned by Match for paths that cannot name a route.
var ErrMalformedPath = errors.New("malformed path")

// Match is the outcome of routing a request path. At most one of Route and
// Redirect is set; the zero Match means nothing matched.
type Match struct {
	Route    *Route
	Redirect string
}

// Found reports whether the path matched a route or a redirect.
func (m Match) Found() bool {
	return m.Route != nil || m.Redirect != ""
}

// Match routes path against the table. Exact patterns win; a path with
// trailing slashes whose trimmed form is a route redirects to that form.
func (t *RouteTable) Match(path string) (Match, error) {
	if !utf8.ValidString(path) || strings.IndexByte(path, 0) >= 0 {
		return Match{}, fmt.Errorf("blog: %q: %w", path, ErrMalformedPath)
	}
	if path == "" {
		return Match{Redirect: HomePattern}, nil
	}
	if r, ok := t.Lookup(path); ok {
		return Match{Route: &r}, nil
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		trimmed := strings.TrimRight(path, "/")
		if trimmed == "" {
			return Match{Redirect: HomePattern}, nil
		}
		if _, ok := t.Lookup(trimmed); ok {
			return Match{Redirect: trimmed}, nil
		}
	}
	return Match{}, nil
}

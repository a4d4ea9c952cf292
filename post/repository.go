package post

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/dylants/blog/markdown"
)

// Ext is the file extension of post documents.
const Ext = ".md"

var (
	// ErrMissingTitle is returned for a document without a title.
	ErrMissingTitle = errors.New("missing title")
	// ErrTimestampMismatch is returned when the front matter timestamp
	// disagrees with the file name.
	ErrTimestampMismatch = errors.New("timestamp does not match file name")
	// ErrDuplicateTimestamp is returned when two documents share a date code.
	ErrDuplicateTimestamp = errors.New("duplicate timestamp")
)

// Repository discovers and loads post documents from the root of FS.
// Documents are named YYYYMMDD.md or YYYYMMDD-anything.md.
type Repository struct {
	FS fs.FS
}

// ListFiles returns the names of all post documents, newest first.
func (r Repository) ListFiles() ([]string, error) {
	entries, err := fs.ReadDir(r.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("post: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || path.Ext(name) != Ext {
			continue
		}
		if !hasTimestampPrefix(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if a, b := names[i][:8], names[j][:8]; a != b {
			return a > b
		}
		return names[i] > names[j]
	})
	return names, nil
}

// LoadAll loads every post document in ListFiles order. The first failure
// aborts the load.
func (r Repository) LoadAll() ([]Post, error) {
	names, err := r.ListFiles()
	if err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		p, err := r.Load(name)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[p.Timestamp]; ok {
			return nil, fmt.Errorf("post: %s and %s: %w", prev, name, ErrDuplicateTimestamp)
		}
		seen[p.Timestamp] = name
		posts = append(posts, p)
	}
	return posts, nil
}

// Load reads and parses a single post document.
func (r Repository) Load(name string) (Post, error) {
	b, err := fs.ReadFile(r.FS, name)
	if err != nil {
		return Post{}, fmt.Errorf("post: %w", err)
	}
	return Parse(name, b)
}

// Parse builds a Post from the raw document b stored under name.
func Parse(name string, b []byte) (Post, error) {
	if !hasTimestampPrefix(name) {
		return Post{}, fmt.Errorf("post: %s: %w", name, ErrInvalidTimestamp)
	}
	timestamp := name[:8]

	fm, body := extractFrontMatter(b)
	var front frontMatter
	if len(fm) > 0 {
		if err := decodeFrontMatter(fm, &front); err != nil {
			return Post{}, fmt.Errorf("post: %s: front matter: %w", name, err)
		}
	}
	if strings.TrimSpace(front.Title) == "" {
		return Post{}, fmt.Errorf("post: %s: %w", name, ErrMissingTitle)
	}
	if front.Timestamp != "" && front.Timestamp != timestamp {
		return Post{}, fmt.Errorf("post: %s: %q: %w", name, front.Timestamp, ErrTimestampMismatch)
	}

	display, err := ToDisplayDate(timestamp)
	if err != nil {
		return Post{}, fmt.Errorf("post: %s: %w", name, ErrInvalidTimestamp)
	}
	content, err := markdown.ToHTML(body)
	if err != nil {
		return Post{}, fmt.Errorf("post: %s: %w", name, err)
	}

	return Post{
		Timestamp:        timestamp,
		Title:            front.Title,
		DisplayTimestamp: display,
		Image:            front.Image,
		Tags:             front.Tags,
		Content:          content,
		Path:             ToURLPath(timestamp, front.Title),
		Source:           name,
	}, nil
}

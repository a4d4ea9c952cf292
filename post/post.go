// Package post loads blog posts from markdown documents and derives the
// values the site needs from them: display dates, slugs and URL paths.
package post

import (
	"errors"
	"fmt"
	"html/template"
	"time"
)

const (
	timestampLayout = "20060102"
	displayLayout   = "January 2, 2006"
)

// ErrInvalidTimestamp is returned for date codes that are not 8 digits
// naming a real calendar day.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Post is one article. It is built once at startup and never mutated.
type Post struct {
	Timestamp        string        // YYYYMMDD, unique
	Title            string        // human readable title
	DisplayTimestamp string        // e.g. "May 29, 2016"
	Image            string        // cover image URL, may be empty
	Tags             []string      // optional, used by the feed
	Content          template.HTML // rendered body
	Path             string        // /posts/{timestamp}/{slug}
	Source           string        // file the post was loaded from
}

// Date returns the publish day encoded in the timestamp.
func (p Post) Date() time.Time {
	t, _ := time.Parse(timestampLayout, p.Timestamp)
	return t
}

// ValidTimestamp reports whether s is an 8 digit YYYYMMDD calendar date.
func ValidTimestamp(s string) bool {
	if !hasTimestampPrefix(s) || len(s) != len(timestampLayout) {
		return false
	}
	_, err := time.Parse(timestampLayout, s)
	return err == nil
}

// hasTimestampPrefix reports whether s starts with 8 ASCII digits.
func hasTimestampPrefix(s string) bool {
	if len(s) < len(timestampLayout) {
		return false
	}
	for i := 0; i < len(timestampLayout); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ToDisplayDate formats a YYYYMMDD timestamp as "{Month} {day}, {year}".
func ToDisplayDate(timestamp string) (string, error) {
	if !ValidTimestamp(timestamp) {
		return "", fmt.Errorf("post: %q: %w", timestamp, ErrInvalidTimestamp)
	}
	t, err := time.Parse(timestampLayout, timestamp)
	if err != nil {
		return "", fmt.Errorf("post: %q: %w", timestamp, ErrInvalidTimestamp)
	}
	return t.Format(displayLayout), nil
}

// ToURLPath composes the path a post is served at.
func ToURLPath(timestamp, title string) string {
	return "/posts/" + timestamp + "/" + Slugify(title)
}

// Package sample produces the short plain-text previews shown on the
// listing page.
package sample

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/dylants/blog/markdown"
)

// Ellipsis is appended to truncated previews.
const Ellipsis = "..."

// ErrMarkerNotFound is returned under the Strict policy when the marker
// does not occur in the text.
var ErrMarkerNotFound = errors.New("sample: marker not found")

// MarkerPolicy decides what happens when the marker is missing.
type MarkerPolicy int

const (
	// FromStart samples from the beginning of the text.
	FromStart MarkerPolicy = iota
	// Strict fails with ErrMarkerNotFound.
	Strict
)

func (p MarkerPolicy) String() string {
	switch p {
	case FromStart:
		return "fromstart"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("MarkerPolicy(%d)", int(p))
}

// ParsePolicy parses the configuration spelling of a policy. The empty
// string selects FromStart.
func ParsePolicy(s string) (MarkerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fromstart":
		return FromStart, nil
	case "strict":
		return Strict, nil
	}
	return 0, fmt.Errorf("sample: unknown marker policy %q", s)
}

// AfterMarker removes everything up to and including the first occurrence
// of marker.
func AfterMarker(text, marker string, policy MarkerPolicy) (string, error) {
	i := strings.Index(text, marker)
	if i < 0 {
		if policy == Strict {
			return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
		}
		return text, nil
	}
	return text[i+len(marker):], nil
}

// Truncate shortens text to at most length runes. Text that already fits
// is returned unchanged. Otherwise the cut is moved back to a whitespace
// boundary and Ellipsis is appended; a word is never split, so text with no
// boundary inside the budget yields Ellipsis alone.
func Truncate(text string, length int) string {
	if utf8.RuneCountInString(text) <= length {
		return text
	}
	end := length - len(Ellipsis)
	if end < 1 {
		return Ellipsis[:max(0, min(length, len(Ellipsis)))]
	}
	rs := []rune(text)
	cut := rs[:end]
	if !unicode.IsSpace(rs[end]) {
		i := lastSpace(cut)
		if i < 0 {
			return Ellipsis
		}
		cut = cut[:i]
	}
	s := strings.TrimRightFunc(string(cut), unicode.IsSpace)
	if s == "" {
		return Ellipsis
	}
	return s + Ellipsis
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}

// Sampler builds previews using a fixed marker policy.
type Sampler struct {
	Policy MarkerPolicy
}

// FromText strips the text up to marker, collapses every whitespace run to
// a single space and truncates the remainder to length runes. The result
// is therefore never the raw input when that input spans several lines,
// even if it fits in length.
func (s Sampler) FromText(text, marker string, length int) (string, error) {
	rest, err := AfterMarker(text, marker, s.Policy)
	if err != nil {
		return "", err
	}
	return Truncate(strings.Join(strings.Fields(rest), " "), length), nil
}

// FromComponent renders c, strips its markup and samples the text.
func (s Sampler) FromComponent(ctx context.Context, c templ.Component, marker string, length int) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("sample: render: %w", err)
	}
	text, err := markdown.PlainText(&buf)
	if err != nil {
		return "", err
	}
	return s.FromText(text, marker, length)
}

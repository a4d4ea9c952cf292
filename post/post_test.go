package post

import (
	"errors"
	"testing"
)

func TestToURLPath(t *testing.T) {
	tests := []struct {
		timestamp, title, expected string
	}{
		{"20160529", "Some Name of a Post", "/posts/20160529/some-name-of-a-post"},
		{"20160529", "This (post) / is ? bad", "/posts/20160529/this-post-is-bad"},
		{"20130202", "GitHub Pages + JavaScript = Awesome", "/posts/20130202/github-pages-javascript-awesome"},
		{"20240101", "Been a While...", "/posts/20240101/been-a-while"},
		{"20150310", "Don't Panic", "/posts/20150310/dont-panic"},
		{"20150310", "Café Società", "/posts/20150310/cafe-societa"},
		{"20150310", "?!", "/posts/20150310/untitled"},
	}
	for _, tt := range tests {
		got := ToURLPath(tt.timestamp, tt.title)
		if got != tt.expected {
			t.Errorf("ToURLPath(%q, %q) = %q, want %q", tt.timestamp, tt.title, got, tt.expected)
		}
		if again := ToURLPath(tt.timestamp, tt.title); again != got {
			t.Errorf("ToURLPath(%q, %q) not stable: %q then %q", tt.timestamp, tt.title, got, again)
		}
	}
}

func TestToDisplayDate(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"20160529", "May 29, 2016"},
		{"20130102", "January 2, 2013"},
		{"20241231", "December 31, 2024"},
		{"20240229", "February 29, 2024"},
	}
	for _, tt := range tests {
		got, err := ToDisplayDate(tt.input)
		if err != nil {
			t.Fatalf("ToDisplayDate(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ToDisplayDate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToDisplayDateInvalid(t *testing.T) {
	for _, input := range []string{"", "2016052", "201605290", "2016-05-29", "20161301", "20230229", "abcdefgh"} {
		if _, err := ToDisplayDate(input); !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("ToDisplayDate(%q) error = %v, want ErrInvalidTimestamp", input, err)
		}
	}
}

func TestPostDate(t *testing.T) {
	p := Post{Timestamp: "20160529"}
	if got := p.Date().Format("2006-01-02"); got != "2016-05-29" {
		t.Errorf("Date() = %q, want %q", got, "2016-05-29")
	}
}

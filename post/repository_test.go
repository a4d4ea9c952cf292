package post

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func doc(fm, body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("+++\n" + fm + "\n+++\n" + body)}
}

func TestExtractFrontMatter(t *testing.T) {
	tests := []struct {
		input, fm, body string
	}{
		{"", "", ""},
		{"+++\ntitle = \"x\"\n+++\nhello", `title = "x"`, "hello"},
		{"  +++\n x = \"+++\"\n +++\n body", `x = "+++"`, "body"},
		{"no front matter", "", "no front matter"},
		{"text first\n+++\nx = 1\n+++\nrest", "", "text first\n+++\nx = 1\n+++\nrest"},
	}
	for _, tt := range tests {
		fm, body := extractFrontMatter([]byte(tt.input))
		if string(fm) != tt.fm || string(body) != tt.body {
			t.Errorf("extractFrontMatter(%q) = (%q, %q), want (%q, %q)", tt.input, fm, body, tt.fm, tt.body)
		}
	}
}

func TestListFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"20130202.md":           doc(`title = "b"`, ""),
		"20240101.md":           doc(`title = "c"`, ""),
		"20160529-tips.md":      doc(`title = "a"`, ""),
		"README.md":             {Data: []byte("readme")},
		".20990101.md":          {Data: []byte("hidden")},
		"20170101.txt":          {Data: []byte("not markdown")},
		"20180101.md/nested.md": {Data: []byte("dir")},
	}
	got, err := Repository{FS: fsys}.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	want := []string{"20240101.md", "20160529-tips.md", "20130202.md"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ListFiles() = %v, want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1][:8] <= got[i][:8] {
			t.Errorf("ListFiles() not strictly descending at %d: %v", i, got)
		}
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"20130202.md": doc(`title = "GitHub Pages + JavaScript = Awesome"`, "Older post."),
		"20240101.md": doc("title = \"Been a While...\"\nimage = \"https://example.com/c.png\"\ntags = [\"life\"]", "# Hello\n\nNew post."),
	}
	posts, err := Repository{FS: fsys}.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("LoadAll() returned %d posts, want 2", len(posts))
	}
	p := posts[0]
	if p.Timestamp != "20240101" || p.Title != "Been a While..." {
		t.Errorf("first post = %q %q, want newest", p.Timestamp, p.Title)
	}
	if p.DisplayTimestamp != "January 1, 2024" {
		t.Errorf("DisplayTimestamp = %q, want %q", p.DisplayTimestamp, "January 1, 2024")
	}
	if p.Path != "/posts/20240101/been-a-while" {
		t.Errorf("Path = %q, want %q", p.Path, "/posts/20240101/been-a-while")
	}
	if p.Image != "https://example.com/c.png" {
		t.Errorf("Image = %q", p.Image)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "life" {
		t.Errorf("Tags = %v, want [life]", p.Tags)
	}
	if !strings.Contains(string(p.Content), `<h1 id="hello">Hello</h1>`) {
		t.Errorf("Content = %q, want rendered markdown", p.Content)
	}
	if p.Source != "20240101.md" {
		t.Errorf("Source = %q", p.Source)
	}
	if posts[1].Image != "" {
		t.Errorf("second post Image = %q, want empty", posts[1].Image)
	}
}

func TestLoadAllErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{"missing title", fstest.MapFS{"20240101.md": doc(`image = ""`, "body")}, ErrMissingTitle},
		{"no front matter", fstest.MapFS{"20240101.md": {Data: []byte("just text")}}, ErrMissingTitle},
		{"bad date", fstest.MapFS{"20241301.md": doc(`title = "x"`, "")}, ErrInvalidTimestamp},
		{"mismatch", fstest.MapFS{"20240101.md": doc("title = \"x\"\ntimestamp = \"20230101\"", "")}, ErrTimestampMismatch},
		{"duplicate", fstest.MapFS{
			"20240101.md":   doc(`title = "x"`, ""),
			"20240101-b.md": doc(`title = "y"`, ""),
		}, ErrDuplicateTimestamp},
	}
	for _, tt := range tests {
		if _, err := (Repository{FS: tt.fsys}).LoadAll(); !errors.Is(err, tt.want) {
			t.Errorf("%s: LoadAll() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestLoadAllUnknownKey(t *testing.T) {
	fsys := fstest.MapFS{"20240101.md": doc("title = \"x\"\ntitel = \"typo\"", "")}
	_, err := Repository{FS: fsys}.LoadAll()
	if err == nil || !strings.Contains(err.Error(), "20240101.md") {
		t.Errorf("LoadAll() error = %v, want an error naming the file", err)
	}
}

func TestLoadAllEmpty(t *testing.T) {
	posts, err := Repository{FS: fstest.MapFS{}}.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("LoadAll() = %v, want none", posts)
	}
}

func TestParseMatchingTimestamp(t *testing.T) {
	p, err := Parse("20160529.md", []byte("+++\ntitle = \"Tips\"\ntimestamp = \"20160529\"\n+++\nbody"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.DisplayTimestamp != "May 29, 2016" {
		t.Errorf("DisplayTimestamp = %q, want %q", p.DisplayTimestamp, "May 29, 2016")
	}
}

func TestLoadAllShippedPosts(t *testing.T) {
	posts, err := Repository{FS: os.DirFS(filepath.Join("..", "posts"))}.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(posts) <= 10 {
		t.Fatalf("LoadAll() = %d posts, want more than 10", len(posts))
	}
	for i, p := range posts {
		if p.Image == "" {
			t.Errorf("%s has no cover image", p.Source)
		}
		if i > 0 && posts[i-1].Timestamp <= p.Timestamp {
			t.Errorf("%s listed after %s", p.Source, posts[i-1].Source)
		}
	}
}

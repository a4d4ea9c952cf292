package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/dylants/blog/post"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func testPost() post.Post {
	return post.Post{
		Timestamp:        "20160529",
		Title:            "Tips & <Tricks>",
		DisplayTimestamp: "May 29, 2016",
		Image:            "https://example.com/cover.png",
		Content:          "<p>Body text.</p>",
		Path:             "/posts/20160529/tips-tricks",
	}
}

func TestArticle(t *testing.T) {
	got := render(t, Article(testPost()))
	for _, want := range []string{
		`<h1>Tips &amp; &lt;Tricks&gt;</h1>`,
		`<div class="timestamp">May 29, 2016</div>`,
		`<img class="image" src="https://example.com/cover.png" alt="">`,
		`<p>Body text.</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Article should contain %q: %q", want, got)
		}
	}
}

func TestArticleWithoutImage(t *testing.T) {
	p := testPost()
	p.Image = ""
	if got := render(t, Article(p)); strings.Contains(got, "<img") {
		t.Errorf("Article without image should not render img: %q", got)
	}
}

func TestHomeImages(t *testing.T) {
	first := testPost()
	second := testPost()
	second.Title = "Older"
	second.Path = "/posts/20130110/older"
	second.Image = "https://example.com/older.png"
	got := render(t, Home([]Listing{
		{Post: first, Sample: "first sample", ShowImage: true},
		{Post: second, Sample: "second sample", ShowImage: false},
	}))
	if !strings.Contains(got, `src="https://example.com/cover.png"`) {
		t.Errorf("first listing should show its image: %q", got)
	}
	if strings.Contains(got, "older.png") {
		t.Errorf("second listing should not show its image: %q", got)
	}
	if !strings.Contains(got, `<a href="/posts/20130110/older">`) {
		t.Errorf("listing should link to the post: %q", got)
	}
	if !strings.Contains(got, `<p class="sample">second sample</p>`) {
		t.Errorf("listing should include the sample: %q", got)
	}
}

func TestShell(t *testing.T) {
	cfg := SiteConfig{
		Name:      "Randomness in Code",
		SourceURL: "https://github.com/dylants/blog",
		Links:     []Link{{Name: "GitHub", URL: "https://github.com/dylants"}},
	}
	meta := PageMeta{Title: "A Post", URL: "https://blog.example.com/posts/1/a", JSONLD: `{"a":1}`}
	got := render(t, Shell(cfg, meta, Article(testPost())))
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>A Post | Randomness in Code</title>",
		`<link rel="canonical" href="https://blog.example.com/posts/1/a">`,
		`<link rel="stylesheet" href="/assets/style.css">`,
		`<script type="application/ld+json">{"a":1}</script>`,
		`<a href="https://github.com/dylants" class="link">GitHub</a>`,
		`site source code: <a href="https://github.com/dylants/blog"`,
		"<h1>Tips &amp; &lt;Tricks&gt;</h1>",
		"</body></html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Shell should contain %q: %q", want, got)
		}
	}
}

func TestUnsafeURLIsSanitized(t *testing.T) {
	p := testPost()
	p.Image = "javascript:alert(1)"
	if got := render(t, PostTitle(p)); strings.Contains(got, "javascript:") {
		t.Errorf("PostTitle should sanitize image URL: %q", got)
	}
}

func TestAbsURL(t *testing.T) {
	tests := []struct {
		base, path, expected string
	}{
		{"https://blog.example.com", "/", "https://blog.example.com/"},
		{"https://blog.example.com/", "/posts/20160529/a", "https://blog.example.com/posts/20160529/a"},
		{"https://example.com/blog", "/posts/1/a", "https://example.com/blog/posts/1/a"},
		{"", "/posts/1/a", "/posts/1/a"},
	}
	for _, tt := range tests {
		if got := AbsURL(tt.base, tt.path); got != tt.expected {
			t.Errorf("AbsURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.expected)
		}
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	got := BlogPostingJsonLD(SiteConfig{Name: "Blog", URL: "https://b.example.com"}, testPost(), "a sample")
	for _, want := range []string{
		`"@type":"BlogPosting"`,
		`"datePublished":"2016-05-29"`,
		`"url":"https://b.example.com/posts/20160529/tips-tricks"`,
		`"description":"a sample"`,
		`"headline":"Tips \u0026 \u003cTricks\u003e"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BlogPostingJsonLD should contain %s: %s", want, got)
		}
	}
}

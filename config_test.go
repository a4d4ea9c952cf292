package blog

import (
	"testing"
	"time"
)

func TestSetDefaults(t *testing.T) {
	c := DefaultConfig()
	if c.Addr != ":3000" {
		t.Errorf("Addr = %q, want %q", c.Addr, ":3000")
	}
	if c.PostsDir != "posts" {
		t.Errorf("PostsDir = %q, want %q", c.PostsDir, "posts")
	}
	if c.MaxPostsToDisplayImages != 10 {
		t.Errorf("MaxPostsToDisplayImages = %d, want 10", c.MaxPostsToDisplayImages)
	}
	if c.SampleLength != 445 || c.SampleSlimLength != 310 {
		t.Errorf("sample lengths = %d/%d, want 445/310", c.SampleLength, c.SampleSlimLength)
	}
	if c.MarkerPolicy != "fromstart" {
		t.Errorf("MarkerPolicy = %q, want %q", c.MarkerPolicy, "fromstart")
	}
	if c.ReadTimeout != 10*time.Second || c.WriteTimeout != 10*time.Second {
		t.Errorf("timeouts = %v/%v, want 10s", c.ReadTimeout, c.WriteTimeout)
	}
}

func TestSetDefaultsKeepsValues(t *testing.T) {
	c := SiteConfig{Name: "Mine", Addr: ":8080", SampleLength: 100}
	c.setDefaults()
	if c.Name != "Mine" || c.Addr != ":8080" || c.SampleLength != 100 {
		t.Errorf("setDefaults overwrote values: %+v", c)
	}
}

func TestSite(t *testing.T) {
	c := SiteConfig{Name: "Blog", URL: "https://b.example.com", SourceURL: "https://git.example.com"}
	s := c.Site()
	if s.Name != c.Name || s.URL != c.URL || s.SourceURL != c.SourceURL {
		t.Errorf("Site() = %+v, want fields copied from %+v", s, c)
	}
}

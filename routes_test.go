package blog

import (
	"errors"
	"strings"
	"testing"

	"github.com/dylants/blog/post"
	"github.com/dylants/blog/views"
)

func testListings() []views.Listing {
	return []views.Listing{
		{Post: post.Post{Timestamp: "20240101", Title: "Been a While...", DisplayTimestamp: "January 1, 2024", Path: "/posts/20240101/been-a-while"}, Sample: "new", ShowImage: true},
		{Post: post.Post{Timestamp: "20130202", Title: "GitHub Pages", DisplayTimestamp: "February 2, 2013", Path: "/posts/20130202/github-pages"}, Sample: "old"},
	}
}

func TestBuildRoutes(t *testing.T) {
	table, err := BuildRoutes(testListings(), views.SiteConfig{Name: "Blog", URL: "https://b.example.com"})
	if err != nil {
		t.Fatalf("BuildRoutes failed: %v", err)
	}
	routes := table.Routes()
	want := []string{"/", "/posts/20240101/been-a-while", "/posts/20130202/github-pages"}
	if len(routes) != len(want) {
		t.Fatalf("BuildRoutes() = %d routes, want %d", len(routes), len(want))
	}
	for i, r := range routes {
		if r.Pattern != want[i] {
			t.Errorf("route %d = %q, want %q", i, r.Pattern, want[i])
		}
		if r.Content == nil {
			t.Errorf("route %q has no content", r.Pattern)
		}
	}
	if routes[1].Meta.Title != "Been a While..." || routes[1].Meta.Description != "new" {
		t.Errorf("post meta = %+v", routes[1].Meta)
	}
	if routes[1].Meta.URL != "https://b.example.com/posts/20240101/been-a-while" {
		t.Errorf("post canonical URL = %q", routes[1].Meta.URL)
	}
	if routes[0].Meta.OGType != "website" || routes[1].Meta.OGType != "article" {
		t.Errorf("og types = %q, %q", routes[0].Meta.OGType, routes[1].Meta.OGType)
	}
}

func TestBuildRoutesEmpty(t *testing.T) {
	table, err := BuildRoutes(nil, views.SiteConfig{})
	if err != nil {
		t.Fatalf("BuildRoutes failed: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("BuildRoutes(nil) = %d routes, want only home", table.Len())
	}
	if _, ok := table.Lookup("/"); !ok {
		t.Error("home route missing")
	}
}

func TestBuildRoutesDuplicate(t *testing.T) {
	listings := testListings()
	listings[1].Post.Path = listings[0].Post.Path
	if _, err := BuildRoutes(listings, views.SiteConfig{}); !errors.Is(err, ErrDuplicateRoute) {
		t.Errorf("BuildRoutes() error = %v, want ErrDuplicateRoute", err)
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	table, err := BuildRoutes(testListings(), views.SiteConfig{})
	if err != nil {
		t.Fatalf("BuildRoutes failed: %v", err)
	}
	routes := table.Routes()
	routes[0].Pattern = "/changed"
	if _, ok := table.Lookup("/"); !ok {
		t.Error("modifying Routes() result changed the table")
	}
}

func TestPage(t *testing.T) {
	table, err := BuildRoutes(testListings(), views.SiteConfig{Name: "Blog"})
	if err != nil {
		t.Fatalf("BuildRoutes failed: %v", err)
	}
	r, _ := table.Lookup("/posts/20130202/github-pages")
	var b strings.Builder
	if err := table.Page(r).Render(t.Context(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "<title>GitHub Pages | Blog</title>") {
		t.Errorf("Page should set the title: %q", got)
	}
	if !strings.Contains(got, "<h1>GitHub Pages</h1>") {
		t.Errorf("Page should contain the article: %q", got)
	}
}

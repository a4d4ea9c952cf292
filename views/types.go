package views

import "github.com/dylants/blog/post"

// SiteConfig holds the site-wide settings the templates read.
type SiteConfig struct {
	Name        string // Site name, shown in the header and <title>
	URL         string // Canonical URL, used for absolute links
	Description string // Meta description of the home page
	Author      string // Author name for JSON-LD
	SourceURL   string // Link to the site's source code, shown in the footer
	Links       []Link // Extra header links
}

// Link is a header navigation entry.
type Link struct {
	Name string `mapstructure:"name" toml:"name"`
	URL  string `mapstructure:"url" toml:"url"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image, optional
	JSONLD      string // structured data block, optional
}

// Listing is one entry of the home page.
type Listing struct {
	Post      post.Post
	Sample    string // plain-text preview
	ShowImage bool   // render the cover image
}

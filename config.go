package blog

import (
	"io/fs"
	"time"

	"github.com/dylants/blog/views"
)

// SiteConfig holds all configuration for the blog. Field tags name the keys
// used in blog.toml and, upper-cased with a BLOG_ prefix, the environment.
type SiteConfig struct {
	Name        string       `mapstructure:"name"`        // Site name (default "Randomness in Code")
	URL         string       `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string       `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string       `mapstructure:"author"`      // Author name for JSON-LD
	SourceURL   string       `mapstructure:"source_url"`  // Link to the site source, shown in the footer
	Links       []views.Link `mapstructure:"links"`       // Header links

	Addr     string `mapstructure:"addr"`      // Listen address (default ":3000")
	PostsDir string `mapstructure:"posts_dir"` // Directory of post documents (default "posts")

	MaxPostsToDisplayImages int    `mapstructure:"max_posts_to_display_images"` // default 10
	SampleLength            int    `mapstructure:"sample_length"`               // default 445
	SampleSlimLength        int    `mapstructure:"sample_slim_length"`          // default 310
	MarkerPolicy            string `mapstructure:"marker_policy"`               // "fromstart" (default) or "strict"

	ReadTimeout  time.Duration `mapstructure:"read_timeout"`  // default 10s
	WriteTimeout time.Duration `mapstructure:"write_timeout"` // default 10s
}

// DefaultConfig returns a SiteConfig with every default filled in.
func DefaultConfig() SiteConfig {
	var c SiteConfig
	c.setDefaults()
	return c
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Randomness in Code"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.MaxPostsToDisplayImages == 0 {
		c.MaxPostsToDisplayImages = 10
	}
	if c.SampleLength == 0 {
		c.SampleLength = 445
	}
	if c.SampleSlimLength == 0 {
		c.SampleSlimLength = 310
	}
	if c.MarkerPolicy == "" {
		c.MarkerPolicy = "fromstart"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
}

// Site returns the subset of the configuration the templates read.
func (c SiteConfig) Site() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
		SourceURL:   c.SourceURL,
		Links:       c.Links,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithPostsFS loads posts from fsys instead of Config.PostsDir.
func WithPostsFS(fsys fs.FS) Option {
	return func(a *App) {
		a.postsFS = fsys
	}
}

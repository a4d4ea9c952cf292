package blog

import (
	"context"
	"fmt"

	"github.com/dylants/blog/post"
	"github.com/dylants/blog/sample"
	"github.com/dylants/blog/views"
)

// buildListings computes the home page entries. The newest
// MaxPostsToDisplayImages posts get their image and the full sample; the
// rest get the slim sample only. The date shown in each article's title
// block marks where its sample starts.
func buildListings(ctx context.Context, posts []post.Post, s sample.Sampler, cfg SiteConfig) ([]views.Listing, error) {
	listings := make([]views.Listing, 0, len(posts))
	for i, p := range posts {
		full := i < cfg.MaxPostsToDisplayImages
		length := cfg.SampleSlimLength
		if full {
			length = cfg.SampleLength
		}
		text, err := s.FromComponent(ctx, views.Article(p), p.DisplayTimestamp, length)
		if err != nil {
			return nil, fmt.Errorf("blog: sample %s: %w", p.Source, err)
		}
		listings = append(listings, views.Listing{Post: p, Sample: text, ShowImage: full})
	}
	return listings, nil
}

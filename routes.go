package blog

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"

	"github.com/dylants/blog/views"
)

// ErrDuplicateRoute is returned when two routes share a pattern.
var ErrDuplicateRoute = errors.New("duplicate route")

// HomePattern is the path of the listing page.
const HomePattern = "/"

// Route binds a path to the content rendered for it.
type Route struct {
	Pattern string          // "/" or /posts/{timestamp}/{slug}
	Meta    views.PageMeta  // head metadata, Meta.Title is the page title
	Content templ.Component // rendered inside the page shell
}

// RouteTable is the immutable set of routes served by the site. It is
// built once by BuildRoutes and may be read concurrently.
type RouteTable struct {
	site   views.SiteConfig
	routes []Route
	index  map[string]int
}

func newRouteTable(site views.SiteConfig) *RouteTable {
	return &RouteTable{site: site, index: make(map[string]int)}
}

func (t *RouteTable) add(r Route) error {
	if _, ok := t.index[r.Pattern]; ok {
		return fmt.Errorf("blog: %q: %w", r.Pattern, ErrDuplicateRoute)
	}
	t.index[r.Pattern] = len(t.routes)
	t.routes = append(t.routes, r)
	return nil
}

// BuildRoutes creates the home route followed by one route per listed
// post, in listing order.
func BuildRoutes(listings []views.Listing, site views.SiteConfig) (*RouteTable, error) {
	t := newRouteTable(site)
	home := Route{
		Pattern: HomePattern,
		Meta: views.PageMeta{
			Title:       site.Name,
			Description: site.Description,
			URL:         views.AbsURL(site.URL, HomePattern),
			OGType:      "website",
			JSONLD:      views.WebsiteJsonLD(site),
		},
		Content: views.Home(listings),
	}
	if err := t.add(home); err != nil {
		return nil, err
	}
	for _, l := range listings {
		p := l.Post
		r := Route{
			Pattern: p.Path,
			Meta: views.PageMeta{
				Title:       p.Title,
				Description: l.Sample,
				URL:         views.AbsURL(site.URL, p.Path),
				OGType:      "article",
				Image:       p.Image,
				JSONLD:      views.BlogPostingJsonLD(site, p, l.Sample),
			},
			Content: views.Article(p),
		}
		if err := t.add(r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Lookup returns the route registered at exactly pattern.
func (t *RouteTable) Lookup(pattern string) (Route, bool) {
	i, ok := t.index[pattern]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of the routes in table order.
func (t *RouteTable) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Len returns the number of routes.
func (t *RouteTable) Len() int { return len(t.routes) }

// Page wraps the route's content in the site shell.
func (t *RouteTable) Page(r Route) templ.Component {
	return views.Shell(t.site, r.Meta, r.Content)
}

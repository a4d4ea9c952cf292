// Package blog serves a personal blog: markdown posts loaded from a
// directory at startup, rendered with templ components and served by Echo.
//
// Every post and the home listing are bound to routes once, when the App is
// initialized. Requests are answered by rendering the matched route inside
// the page shell; anything that matches no route is redirected home.
package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/dylants/blog/post"
	"github.com/dylants/blog/sample"
	"github.com/dylants/blog/views"
)

// App is the blog application. It wires together the post repository, the
// route table, the handlers and the middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Posts    []post.Post
	Listings []views.Listing
	Routes   *RouteTable

	postsFS     fs.FS
	sampler     sample.Sampler
	initialized bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads the posts, computes the listing samples, builds the route
// table and registers middleware and handlers. It is safe to call more
// than once; only the first call does any work.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}

	policy, err := sample.ParsePolicy(a.Config.MarkerPolicy)
	if err != nil {
		return fmt.Errorf("blog: %w", err)
	}
	a.sampler = sample.Sampler{Policy: policy}

	if a.postsFS == nil {
		a.postsFS = os.DirFS(a.Config.PostsDir)
	}
	posts, err := post.Repository{FS: a.postsFS}.LoadAll()
	if err != nil {
		return fmt.Errorf("blog: load posts: %w", err)
	}
	a.Posts = posts

	listings, err := buildListings(context.Background(), posts, a.sampler, a.Config)
	if err != nil {
		return err
	}
	a.Listings = listings

	routes, err := BuildRoutes(listings, a.Config.Site())
	if err != nil {
		return err
	}
	a.Routes = routes

	a.setupMiddleware()
	a.setupRoutes()

	a.Echo.Logger.Infof("loaded %d posts, %d routes", len(posts), routes.Len())
	a.initialized = true
	return nil
}

// Start initializes the app if needed and serves HTTP until the server is
// shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}

	e := a.Echo
	e.HideBanner = true
	e.Server.ReadTimeout = a.Config.ReadTimeout
	e.Server.WriteTimeout = a.Config.WriteTimeout

	if err := e.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.StaticFS("/assets", echo.MustSubFS(Assets, "assets"))

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET(HomePattern, a.handleRequest)
	e.GET("/*", a.handleRequest)
}

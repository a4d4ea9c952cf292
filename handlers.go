package blog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dylants/blog/views"
)

// handleRequest serves every page route. Unknown paths go home.
func (a *App) handleRequest(c echo.Context) error {
	req := c.Request()
	m, err := a.Routes.Match(req.URL.Path)
	if err != nil {
		c.Logger().Errorf("match %q: %v", req.URL.Path, err)
		return c.String(http.StatusInternalServerError, err.Error())
	}
	switch {
	case m.Redirect != "":
		target := m.Redirect
		if req.URL.RawQuery != "" {
			target += "?" + req.URL.RawQuery
		}
		return c.Redirect(http.StatusFound, target)
	case m.Route == nil:
		return c.Redirect(http.StatusFound, HomePattern)
	}
	if err := Render(c, a.Routes.Page(*m.Route)); err != nil {
		c.Logger().Errorf("render %q: %v", m.Route.Pattern, err)
		if c.Response().Committed {
			return nil
		}
		return c.String(http.StatusInternalServerError, err.Error())
	}
	return nil
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Listings)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Listings)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nSitemap: " + views.AbsURL(a.Config.URL, "/sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	c.Response().Header().Set("Cache-Control", "no-cache")
	if code == http.StatusNotFound {
		_ = c.Redirect(http.StatusFound, HomePattern)
		return
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	_ = c.String(code, msg)
}

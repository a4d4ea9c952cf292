// Package views holds the site's templ components: the page shell, the
// header and footer, the home listing and the post article.
//
// The *_templ.go files are generated from the .templ sources with
// `templ generate`.
package views

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// StylesheetPath is where the embedded stylesheet is served.
const StylesheetPath = "/assets/style.css"

// pageTitle is "Post | Site", or the site name alone on the home page.
func pageTitle(cfg SiteConfig, meta PageMeta) string {
	if meta.Title == "" || meta.Title == cfg.Name {
		return cfg.Name
	}
	return meta.Title + " | " + cfg.Name
}

// markup writes post HTML rendered by the markdown package as is.
func markup(html template.HTML) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, string(html))
		return err
	})
}

// jsonLD writes a structured data block. json.Marshal escapes <, > and &,
// which keeps the script content inert.
func jsonLD(data string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script type="application/ld+json">`+data+`</script>`)
		return err
	})
}

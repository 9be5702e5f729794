// Package views renders the site's HTML: the landing directory, the three
// landing themes, and the status pages. Templates, content, and the
// stylesheet are embedded in the binary.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/jsamuelsen11/landing-directory/internal/ports"
)

//go:embed templates/*.gohtml content/*.yaml static/*
var files embed.FS

// Template names shared by every page.
const (
	layoutFile = "layout.gohtml"
	baseName   = "base"
)

// Site carries the site-wide strings shown on the directory and status pages.
type Site struct {
	Name    string
	Tagline string
	Intro   string
}

// pageData is the value every template executes against. Each page fills in
// only the fields its "main" block reads.
type pageData struct {
	Title    string
	Accent   string
	Back     bool
	Site     Site
	Content  *Content
	Landings []landingCard
	Status   ports.StatusPage
}

// Assets returns the static files served under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(fmt.Sprintf("views: static assets: %v", err))
	}
	return sub
}

// parsePage parses the shared layout together with one page template.
func parsePage(name string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(funcs).ParseFS(files,
		path.Join("templates", layoutFile),
		path.Join("templates", name),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

var funcs = template.FuncMap{
	"last": func(i, n int) bool { return i == n-1 },
	"hasScheme": func(href string) bool {
		return strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "http://")
	},
}

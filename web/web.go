// Package web embeds the homepage templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed public
var publicFS embed.FS

// Templates parses every page template with the given helpers.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// Static returns the asset tree served under /css, /js and /images.
func Static() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		// "public" is embedded above, Sub cannot fail
		panic(err)
	}
	return sub
}

// Package web embeds the HTML templates and static assets of the pricing site.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// TemplateFS returns the templates rooted at layouts/, pages/ and partials/.
func TemplateFS() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// StaticFS returns the files served under /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

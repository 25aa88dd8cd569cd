// Package templates embeds the server-rendered pages so the binary ships
// without a templates directory on disk.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse builds the template set the router installs on the gin engine.
func Parse() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}

package render

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// HTML writes the full page for v
func HTML(w io.Writer, v View) error {
	return page.Execute(w, v)
}

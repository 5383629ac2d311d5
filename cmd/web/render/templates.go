package render

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gradpath/parser"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses every page template with the shared FuncMap.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"body":    Body,
		"excerpt": parser.Excerpt,
		"date":    formatDate,
		"pageURL": PageURL,
		"join":    strings.Join,
	}
}

// PageURL links to page of path while keeping the listing filters.
func PageURL(path string, filters map[string]string, page int) string {
	q := url.Values{}
	for k, v := range filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}

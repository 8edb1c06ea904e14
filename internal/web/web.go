// Package web renders the embedded HTML pages. All static routes go through
// one parametrized renderer driven by the page table below.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/robots.txt
var Robots []byte

// Page is one entry of the static-page routing table.
type Page struct {
	Slug  string
	Title string
}

// Pages lists every static page served under "/" and each language prefix.
var Pages = []Page{
	{"about", "About Yalla Habibi"},
	{"terms", "Terms of Service"},
	{"privacy", "Privacy Policy"},
	{"ai-policy", "AI Policy"},
	{"cookies", "Cookie Policy"},
	{"security", "Security"},
	{"manual", "User Manual"},
	{"donate", "Support the Project"},
	{"faq", "Frequently Asked Questions"},
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type pageData struct {
	Title    string
	Lang     string
	Greeting string
	Pages    []Page
}

// RenderIndex writes the home page.
func (r *Renderer) RenderIndex(w io.Writer, lang, greeting string) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", pageData{
		Title:    "Yalla Habibi — The Global Host",
		Lang:     lang,
		Greeting: greeting,
		Pages:    Pages,
	})
}

// RenderPage writes one static page by slug.
func (r *Renderer) RenderPage(w io.Writer, slug, lang, greeting string) error {
	for _, p := range Pages {
		if p.Slug == slug {
			return r.tmpl.ExecuteTemplate(w, "page.html", pageData{
				Title:    p.Title,
				Lang:     lang,
				Greeting: greeting,
				Pages:    Pages,
			})
		}
	}
	return fmt.Errorf("unknown page %q", slug)
}

// Package render renders the site's HTML pages from embedded templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/i18n"
	"github.com/MrSnakeDoc/pali/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"t": func(lang domain.Language, key string) string {
			return i18n.T(lang, key)
		},
		"eqKind": func(k view.Kind, name string) bool {
			return string(k) == name
		},
		"deleteData": func(lang domain.Language, section, id string) deleteData {
			return deleteData{
				Lang:   lang,
				Action: "/admin/" + section + "/" + url.PathEscape(id) + "/delete",
			}
		},
	}
}

type deleteData struct {
	Lang   domain.Language
	Action string
}

// NavItem is one entry of the page navigation.
type NavItem struct {
	Page   domain.Page
	Label  string // i18n key
	Active bool
}

// PageData holds everything the layout needs.
type PageData struct {
	Lang    domain.Language
	Theme   domain.Theme
	HasUser bool
	User    string
	IsAdmin bool

	Nav  []NavItem
	Page view.Page

	LoginOpen    bool
	LoginError   string
	Notification string
	PlayCue      bool
	Flash        string
	NameError    string

	InstallAvailable bool
	ContactViber     string
	FontCSS          template.CSS
	FontFamily       template.CSS

	// Draft is the admin working copy; set only on the admin page.
	Draft *domain.Content
}

// Render writes the page. The output is buffered so a template error never
// produces a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, data PageData) error {
	buf := new(bytes.Buffer)
	if err := r.tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		return fmt.Errorf("executing layout: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets (stylesheet, notification cue, manifest).
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

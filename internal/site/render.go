package site

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/studyitalypro/landing/internal/content"
	"github.com/studyitalypro/landing/internal/leads"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// View is the data the page template renders.
type View struct {
	Page *content.Page
	Form FormView
}

// FormView is the render boundary of the contact form: values, localized
// errors and the display flags. DismissInMillis is the time left on the
// success notice.
type FormView struct {
	Values          leads.Input
	Errors          map[string]string
	Submitting      bool
	Succeeded       bool
	DismissInMillis int64
}

// HasError is used by the template to mark invalid inputs.
func (f FormView) HasError(field string) bool {
	_, ok := f.Errors[field]
	return ok
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates. Unknown map keys are errors.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("site").
		Funcs(template.FuncMap{"json": toJSON, "safeURL": safeURL}).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("site: parse templates: %w", err)
	}
	return &Renderer{tmpl: t}, nil
}

// Render writes the full page with the given status. The page is rendered to
// a buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, v View) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", v); err != nil {
		return fmt.Errorf("site: execute: %w", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// contactSchemes are the link schemes html/template would otherwise replace
// with #ZgotmplZ.
var contactSchemes = map[string]bool{"tel": true, "mailto": true}

// safeURL marks a contact link as trusted. Fragments and the contact schemes
// are allowed; anything else is an error.
func safeURL(raw string) (template.URL, error) {
	if strings.HasPrefix(raw, "#") {
		return template.URL(raw), nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("site: parse url %q: %w", raw, err)
	}
	if !contactSchemes[strings.ToLower(u.Scheme)] {
		return "", fmt.Errorf("site: url scheme not allowed: %q", raw)
	}
	return template.URL(raw), nil
}

// StaticHandler serves the embedded CSS and JS under prefix.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

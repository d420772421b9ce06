package frontend

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/amckee/boostweb/htmx"
)

// renderer handles template rendering.
type renderer struct {
	baseTemplate *template.Template // Document shell, nav, shared fragments
	templatesFS  fs.FS              // Embedded filesystem for page templates
	config       *Config
}

// newRenderer creates a new renderer.
func newRenderer(baseTemplate *template.Template, templatesFS fs.FS, cfg *Config) *renderer {
	return &renderer{
		baseTemplate: baseTemplate,
		templatesFS:  templatesFS,
		config:       cfg,
	}
}

// PageData contains common data for all pages.
type PageData struct {
	SiteTitle   string
	BasePath    string
	CurrentPath string
	ReadOnly    bool
	Data        any
}

// FlashMessage represents a one-off notice rendered above page content.
type FlashMessage struct {
	Type    string // "success", "error", "notice"
	Message string
}

// render renders a page template with the given data.
//
// Plain navigations get the full document ("base" root) at the given status.
// Requests carrying htmx headers get only the title and body content
// ("partial" root) at HTTP 200, retargeted at the body if the swap was aimed
// anywhere else.
//
// It clones the base template and parses the page-specific template into it,
// avoiding conflicts between "content" blocks in different pages.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, name string, status int, data any) error {
	pageData := PageData{
		SiteTitle:   r.config.SiteTitle,
		BasePath:    r.config.BasePath,
		CurrentPath: req.URL.Path,
		ReadOnly:    r.config.ReadOnly,
		Data:        data,
	}

	// Clone the base template to avoid conflicts between page "content" blocks
	tmpl, err := r.baseTemplate.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}

	pageTemplatePath := "templates/" + name
	if _, err = tmpl.ParseFS(r.templatesFS, pageTemplatePath); err != nil {
		return fmt.Errorf("parse page template %s: %w", pageTemplatePath, err)
	}

	hx, isHtmx := htmx.FromRequest(req)
	root := "base"
	if isHtmx {
		root = "partial"
	}

	// Buffer the output so a template fault never leaks half a page with a
	// success status.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, root, pageData); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	htmx.SetVary(h)
	if isHtmx {
		hx.RetargetBody(h)
		// htmx only swaps 200 responses; real statuses are for plain navigation.
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err = w.Write(buf.Bytes())
	return err
}

// renderFragment renders a single fragment template with no page chrome.
// Fragment templates define their template name as the file path
// (e.g., "fragments/entry-rows.html") and are pre-parsed into the base set.
func (r *renderer) renderFragment(w http.ResponseWriter, name string, data any) error {
	tmpl, err := r.baseTemplate.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute fragment %s: %w", name, err)
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	htmx.SetVary(h)
	_, err = w.Write(buf.Bytes())
	return err
}

// Template helper functions

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	days := int(d.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

func truncate(n int, v any) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprintf("%v", v)
	}
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func add(a, b int) int {
	return a + b
}

func sub(a, b int) int {
	return a - b
}

package frontend

import (
	"errors"
	"html/template"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/amckee/boostweb/service"
)

// Per-page view data.

type contentPage struct {
	Heading string
	Body    template.HTML
}

type errorPage struct {
	Message string
}

type notFoundPage struct {
	Method string
	Path   string
}

type formPage struct {
	Intro  template.HTML
	Form   ContentForm
	Errors []FieldError
	Flash  *FlashMessage
}

// parsePage parses a 1-based page number from a query parameter.
func parsePage(r *http.Request, key string) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return 1
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 1
	}
	return service.ValidatePage(i)
}

// logError logs an error if the logger is configured.
func (rt *router) logError(msg string, err error) {
	if rt.config.Logger != nil {
		rt.config.Logger.Warn(msg, "error", err.Error())
	}
}

// mustRender renders a page and falls back to a plain 500 if rendering
// itself fails. Render failures are programming faults (bad template or
// view name), not user errors.
func (rt *router) mustRender(w http.ResponseWriter, r *http.Request, name string, status int, data any) {
	if err := rt.renderer.render(w, r, name, status, data); err != nil {
		rt.logError("render failed", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError renders the shared error page. Plain navigations get a 500;
// htmx requests get the same content at 200 so the swap still happens and
// the visitor can navigate away.
func (rt *router) renderError(w http.ResponseWriter, r *http.Request, err error) {
	rt.logError("handler error", err)
	rt.mustRender(w, r, "error.html", http.StatusInternalServerError, errorPage{
		Message: err.Error(),
	})
}

// Page handlers

func (rt *router) handleHome(w http.ResponseWriter, r *http.Request) {
	body, err := rt.svc.PageHTML("home")
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	rt.mustRender(w, r, "home.html", http.StatusOK, contentPage{
		Heading: "Home",
		Body:    body,
	})
}

// handleFallible fails half the time, demonstrating error rendering through
// the same full-page-or-partial pipeline.
func (rt *router) handleFallible(w http.ResponseWriter, r *http.Request) {
	if rand.IntN(2) == 0 {
		rt.renderError(w, r, errors.New("request was unlucky"))
		return
	}
	body, err := rt.svc.PageHTML("fallible")
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	rt.mustRender(w, r, "fallible.html", http.StatusOK, contentPage{
		Heading: "Lucky you",
		Body:    body,
	})
}

func (rt *router) handleFormExample(w http.ResponseWriter, r *http.Request) {
	intro, err := rt.svc.PageHTML("form-example")
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	rt.mustRender(w, r, "form.html", http.StatusOK, formPage{
		Intro: intro,
	})
}

func (rt *router) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	intro, err := rt.svc.PageHTML("form-example")
	if err != nil {
		rt.renderError(w, r, err)
		return
	}

	form, err := parseContentForm(r)
	if err != nil {
		// The body itself was unreadable, not a validation failure.
		rt.mustRender(w, r, "error.html", http.StatusBadRequest, errorPage{
			Message: "malformed form submission",
		})
		return
	}

	if result := form.Validate(); !result.Valid() {
		rt.mustRender(w, r, "form.html", http.StatusUnprocessableEntity, formPage{
			Intro:  intro,
			Form:   form,
			Errors: result.Errors,
		})
		return
	}

	if rt.config.ReadOnly {
		rt.mustRender(w, r, "form.html", http.StatusOK, formPage{
			Intro: intro,
			Form:  form,
			Flash: &FlashMessage{Type: "notice", Message: "This site is read-only; nothing was stored."},
		})
		return
	}

	if _, err := rt.svc.AddEntry(r.Context(), form.Content); err != nil {
		rt.renderError(w, r, err)
		return
	}

	// Success clears the form so a refresh cannot resubmit the same text.
	rt.mustRender(w, r, "form.html", http.StatusOK, formPage{
		Intro: intro,
		Flash: &FlashMessage{Type: "success", Message: "Content was valid"},
	})
}

func (rt *router) handleEntries(w http.ResponseWriter, r *http.Request) {
	list, err := rt.svc.ListEntries(r.Context(), service.EntryListParams{
		Page:     parsePage(r, "page"),
		PageSize: rt.config.PageSize,
	})
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	rt.mustRender(w, r, "entries.html", http.StatusOK, list)
}

// Fragment handlers

func (rt *router) handleFragmentEntryRows(w http.ResponseWriter, r *http.Request) {
	list, err := rt.svc.ListEntries(r.Context(), service.EntryListParams{
		Page:     parsePage(r, "page"),
		PageSize: rt.config.PageSize,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := rt.renderer.renderFragment(w, "fragments/entry-rows.html", list); err != nil {
		rt.logError("render fragment failed", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Fallback and assets

// handleNotFound renders the not-found page for HTML clients and a plain
// 404 for everything else.
func (rt *router) handleNotFound(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	acceptsHTML := accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
	if !acceptsHTML {
		http.NotFound(w, r)
		return
	}
	rt.mustRender(w, r, "notfound.html", http.StatusNotFound, notFoundPage{
		Method: r.Method,
		Path:   r.URL.Path,
	})
}

func (rt *router) handleFavicon(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/favicon.svg")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/amckee/boostweb/service"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// BasePath is the URL prefix where the site is mounted.
	// All navigation links will be prefixed with this path.
	BasePath string

	// SiteTitle is used in document titles and the page header.
	SiteTitle string

	// PageSize for the paginated entry list.
	PageSize int

	// ReadOnly disables form submissions.
	ReadOnly bool

	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the frontend router state.
type router struct {
	svc      *service.Service
	config   *Config
	renderer *renderer
}

// NewRouter creates the site's http.Handler.
func NewRouter(svc *service.Service, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{
			SiteTitle: "boostweb",
			PageSize:  10,
		}
	}

	baseTmpl := baseTemplateSet()

	rt := &router{
		svc:      svc,
		config:   cfg,
		renderer: newRenderer(baseTmpl, templatesFS, cfg),
	}

	mux := http.NewServeMux()

	// Static assets
	staticSub, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	mux.HandleFunc("GET /favicon.svg", rt.handleFavicon)

	// Pages
	mux.HandleFunc("GET /{$}", rt.handleHome)
	mux.HandleFunc("GET /fallible", rt.handleFallible)
	mux.HandleFunc("GET /form-example", rt.handleFormExample)
	mux.HandleFunc("POST /form-example", rt.handleFormSubmit)
	mux.HandleFunc("GET /entries", rt.handleEntries)

	// HTMX fragments
	mux.HandleFunc("GET /fragments/entry-rows", rt.handleFragmentEntryRows)

	// Everything else gets the rendered not-found page.
	mux.HandleFunc("/", rt.handleNotFound)

	return withFrontendMiddleware(mux, cfg)
}

// withFrontendMiddleware wraps the handler with frontend-specific middleware.
func withFrontendMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = requestLogMiddleware(handler, cfg.Logger)
	handler = recoveryMiddleware(handler, cfg.Logger)
	return handler
}

// recoveryMiddleware recovers from panics.
func recoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestLogMiddleware logs one line per request.
func requestLogMiddleware(next http.Handler, logger Logger) http.Handler {
	if logger == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}

// statusWriter records the status code written to a ResponseWriter.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// baseTemplateSet parses the shared templates: document shell, nav, and
// fragments used by more than one page. Page-specific templates are parsed
// dynamically by the renderer to avoid conflicts between "content" blocks
// in different pages.
func baseTemplateSet() *template.Template {
	return template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS,
			"templates/base.html",
			"templates/fragments/entry-rows.html",
		))
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTime":    formatTime,
		"formatTimeAgo": formatTimeAgo,
		"truncate":      truncate,
		"markdown":      markdown,
		"add":           add,
		"sub":           sub,
	}
}

package boostweb

import (
	"net/http"

	"github.com/amckee/boostweb/frontend"
	"github.com/amckee/boostweb/service"
)

// Handler returns an http.Handler serving the demo site.
//
// Pages are rendered server-side; requests carrying htmx headers receive
// only the inner body content for an in-place swap, everything else gets a
// full HTML document.
//
// Usage:
//
//	http.Handle("/", boostweb.Handler(service.NewMemoryStore(), cfg))
//	r.Mount("/demo", boostweb.Handler(store, cfg))
func Handler(store service.Store, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg.applyDefaults()
	}

	// Validate configuration (panic on invalid config as this is a programmer error)
	if err := cfg.validate(); err != nil {
		panic("boostweb: invalid configuration: " + err.Error())
	}

	svc := service.New(store)
	return frontend.NewRouter(svc, &frontend.Config{
		BasePath:  cfg.BasePath,
		SiteTitle: cfg.SiteTitle,
		PageSize:  cfg.PageSize,
		ReadOnly:  cfg.ReadOnly,
		Logger:    cfg.Logger,
	})
}

// Package boostweb provides an embeddable server-rendered demo site built
// around progressive enhancement with htmx.
//
// Every page is a complete HTML document on plain navigation. When a request
// arrives with htmx headers, only the inner body content is returned so the
// client can swap it in place without a full page load. The package exposes a
// single constructor:
//
//	store := service.NewMemoryStore()
//	http.Handle("/", boostweb.Handler(store, nil))
//
//	http.ListenAndServe(":9000", nil)
//
// # Configuration
//
// The handler accepts an optional Config struct for customization:
//
//	cfg := &boostweb.Config{
//	    SiteTitle: "My demo",
//	    PageSize:  10,
//	    ReadOnly:  true, // disable form submissions
//	}
//
// # Framework Integration
//
// The handler returns a standard http.Handler, compatible with any Go
// framework or router:
//
//	// Standard library
//	http.Handle("/demo/", http.StripPrefix("/demo", boostweb.Handler(store, &boostweb.Config{BasePath: "/demo"})))
//
//	// Chi
//	r.Mount("/demo", boostweb.Handler(store, cfg))
//
// # Adding Middleware
//
// Wrap the handler externally using standard Go patterns:
//
//	handler := authMiddleware(boostweb.Handler(store, cfg))
//	http.Handle("/", handler)
package boostweb

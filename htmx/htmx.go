// Package htmx captures the htmx request headers and provides the response
// headers that steer client-side swaps.
package htmx

import (
	"net/http"
	"net/url"
)

// Request headers sent by htmx.
const (
	HeaderRequest     = "HX-Request"
	HeaderBoosted     = "HX-Boosted"
	HeaderTarget      = "HX-Target"
	HeaderTrigger     = "HX-Trigger"
	HeaderTriggerName = "HX-Trigger-Name"
	HeaderCurrentURL  = "HX-Current-URL"
)

// Response headers understood by htmx.
const (
	HeaderRetarget = "HX-Retarget"
	HeaderReswap   = "HX-Reswap"
)

// bodyTarget is the swap target the site expects. All pages render into
// <body id="body">, so any other target is redirected there.
const bodyTarget = "#body"

// Context holds the htmx state of a single request. It is only present when
// the request was issued by htmx rather than a plain navigation.
type Context struct {
	// Boosted reports whether the request came from a boosted anchor or
	// form rather than an explicit hx-* attribute.
	Boosted bool

	// Target is the id selector of the element being swapped, if any.
	Target string

	// Trigger and TriggerName identify the element that issued the request.
	Trigger     string
	TriggerName string

	// CurrentURL is the URL of the page the request was issued from.
	CurrentURL *url.URL
}

// FromRequest captures the htmx Context from the request headers. The second
// return value is false for plain navigations (no HX-Request header). A
// malformed HX-Current-URL is ignored rather than rejected; only a badly
// behaved client can produce one.
func FromRequest(r *http.Request) (*Context, bool) {
	h := r.Header
	if h.Get(HeaderRequest) != "true" {
		return nil, false
	}
	ctx := &Context{
		Boosted:     h.Get(HeaderBoosted) == "true",
		Target:      h.Get(HeaderTarget),
		Trigger:     h.Get(HeaderTrigger),
		TriggerName: h.Get(HeaderTriggerName),
	}
	if raw := h.Get(HeaderCurrentURL); raw != "" {
		if u, err := url.Parse(raw); err == nil {
			ctx.CurrentURL = u
		}
	}
	return ctx, true
}

// SetVary marks the response as varying on the htmx request header so caches
// keep full documents and fragments apart.
func SetVary(h http.Header) {
	h.Add("Vary", HeaderRequest)
}

// RetargetBody retargets the swap at the document body when the request was
// aimed anywhere else. Without this a fragment response would be swapped into
// whatever element happened to trigger the request.
func (c *Context) RetargetBody(h http.Header) {
	if c.Target != "" && c.Target != bodyTarget {
		h.Set(HeaderRetarget, bodyTarget)
		h.Set(HeaderReswap, "innerHTML")
	}
}

package frontend

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRender_UnknownView(t *testing.T) {
	cfg := &Config{SiteTitle: "boostweb", PageSize: 5}
	r := newRenderer(baseTemplateSet(), templatesFS, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := r.render(w, req, "no-such-view.html", http.StatusOK, nil)
	if err == nil {
		t.Fatal("render accepted an unknown view name")
	}
	if !strings.Contains(err.Error(), "no-such-view.html") {
		t.Errorf("error = %v, want it to name the view", err)
	}
}

func TestRender_ErrorStatusPlainVsBoosted(t *testing.T) {
	cfg := &Config{SiteTitle: "boostweb", PageSize: 5}
	r := newRenderer(baseTemplateSet(), templatesFS, cfg)

	// Plain navigation keeps the real status.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fallible", nil)
	if err := r.render(w, req, "error.html", http.StatusInternalServerError, errorPage{Message: "boom"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("plain status = %d, want 500", w.Code)
	}

	// htmx requests are flattened to 200 so the swap happens.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/fallible", nil)
	req.Header.Set("HX-Request", "true")
	if err := r.render(w, req, "error.html", http.StatusInternalServerError, errorPage{Message: "boom"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Errorf("htmx status = %d, want 200", w.Code)
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, "-"},
		{"seconds ago", now.Add(-10 * time.Second), "just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-10 * time.Minute), "10 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"days", now.Add(-49 * time.Hour), "2 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTimeAgo(tt.t); got != tt.want {
				t.Errorf("formatTimeAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		n    int
		in   string
		want string
	}{
		{10, "short", "short"},
		{8, "exactly8", "exactly8"},
		{8, "much longer text", "much ..."},
		{3, "abcdef", "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.n, tt.in); got != tt.want {
			t.Errorf("truncate(%d, %q) = %q, want %q", tt.n, tt.in, got, tt.want)
		}
	}
}

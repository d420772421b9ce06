package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Site copy is authored as markdown and rendered to HTML on demand. The
// output is sanitized even though the sources are compiled in, so copy
// edits cannot smuggle markup past the renderer.
var pageSource = map[string]string{
	"home": `This is the home page.

Navigation between pages uses **boosted links**: a plain request returns the
whole document, while htmx requests receive only the body content and swap it
in place. Disable JavaScript and everything still works.`,

	"fallible": `You were lucky!

Reload this page a few times and it will eventually fail, demonstrating how
errors are rendered through the same full-page-or-fragment pipeline.`,

	"form-example": `Submit some content below. Validation errors are
re-rendered inline with the value you typed; valid submissions are stored and
show up on the entries page.`,
}

var (
	pageMarkdown = goldmark.New()
	pagePolicy   = bluemonday.UGCPolicy()
)

// PageHTML renders the named page copy to sanitized HTML. Unknown names
// return ErrNotFound; the set of names is fixed at compile time, so a miss
// is a programming error in the caller.
func (s *Service) PageHTML(name string) (template.HTML, error) {
	src, ok := pageSource[name]
	if !ok {
		return "", fmt.Errorf("page %q: %w", name, ErrNotFound)
	}
	var buf bytes.Buffer
	if err := pageMarkdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render page %q: %w", name, err)
	}
	return template.HTML(pagePolicy.SanitizeBytes(buf.Bytes())), nil
}

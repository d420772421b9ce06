package frontend

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	mdRenderer = goldmark.New()
	mdPolicy   = bluemonday.UGCPolicy()
)

// markdown renders user-supplied markdown to sanitized HTML for templates.
// Entry content passes through here, so the sanitizer is not optional: the
// rendered output may contain arbitrary visitor input.
func markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(mdPolicy.SanitizeBytes(buf.Bytes()))
}

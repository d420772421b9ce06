package frontend

import (
	"net/http"
	"strings"
	"unicode"
)

// Validation constants
const (
	// maxContentLength is the maximum length for submitted entry content
	maxContentLength = 2000
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

// ValidationResult collects the field errors of one submission. A result
// with no errors is valid; validation failure is a value, never an error
// return.
type ValidationResult struct {
	Errors []FieldError
}

// Valid reports whether the submission passed all rules.
func (v ValidationResult) Valid() bool {
	return len(v.Errors) == 0
}

// ErrorFor returns the message for a field, or "" if the field passed.
func (v ValidationResult) ErrorFor(field string) string {
	for _, e := range v.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// ContentForm is the submitted state of the example form.
type ContentForm struct {
	Content string
}

// parseContentForm decodes the example form from the request body. An error
// here means the body itself was malformed, not that validation failed.
func parseContentForm(r *http.Request) (ContentForm, error) {
	if err := r.ParseForm(); err != nil {
		return ContentForm{}, err
	}
	return ContentForm{
		Content: r.PostForm.Get("content"),
	}, nil
}

// Validate applies the form rules. Deterministic, no side effects.
func (f ContentForm) Validate() ValidationResult {
	var result ValidationResult
	switch {
	case strings.TrimSpace(f.Content) == "":
		result.Errors = append(result.Errors, FieldError{
			Field:   "content",
			Message: "content must not be empty",
		})
	case !isASCII(f.Content):
		result.Errors = append(result.Errors, FieldError{
			Field:   "content",
			Message: "content must be ASCII text",
		})
	case len(f.Content) > maxContentLength:
		result.Errors = append(result.Errors, FieldError{
			Field:   "content",
			Message: "content must be at most 2000 characters",
		})
	}
	return result
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Package validate converts untyped JSON input into bounded, typed values.
// All functions are pure and synchronous; failures are value-level
// *FieldError instances carrying the offending field name, never panics.
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength bounds any string field that does not declare its own cap.
const DefaultMaxLength = 5000

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

func fieldErr(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// isValidURL reports whether s parses as an absolute URL with an http or
// https scheme. Relative paths and other schemes (ftp, mailto, ...) fail.
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// RequireString checks that v is a string whose trimmed length, counted in
// characters, falls within [min, max] and returns the trimmed value.
// min <= 0 defaults to 1 and max <= 0 defaults to DefaultMaxLength.
func RequireString(v any, field string, min, max int) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fieldErr(field, "must be a string")
	}
	if min <= 0 {
		min = 1
	}
	if max <= 0 {
		max = DefaultMaxLength
	}
	normalized := strings.TrimSpace(s)
	length := utf8.RuneCountInString(normalized)
	if length < min {
		return "", fieldErr(field, "is required")
	}
	if length > max {
		return "", fieldErr(field, "is too long")
	}
	return normalized, nil
}

// RequireURL checks that v is a non-empty absolute http(s) URL.
func RequireURL(v any, field string) (string, error) {
	s, err := RequireString(v, field, 0, 0)
	if err != nil {
		return "", err
	}
	if !isValidURL(s) {
		return "", fieldErr(field, "must be a valid URL")
	}
	return s, nil
}

// OptionalURL returns "" for nil or empty input, otherwise applies the same
// check as RequireURL.
func OptionalURL(v any, field string) (string, error) {
	if v == nil || v == "" {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldErr(field, "must be a string")
	}
	normalized := strings.TrimSpace(s)
	if normalized == "" {
		return "", nil
	}
	if !isValidURL(normalized) {
		return "", fieldErr(field, "must be a valid URL")
	}
	return normalized, nil
}

// OptionalBool returns fallback for nil input and fails when a present value
// is not a boolean.
func OptionalBool(v any, field string, fallback bool) (bool, error) {
	if v == nil {
		return fallback, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fieldErr(field, "must be a boolean")
	}
	return b, nil
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RequireDateISO checks that v is a string matching YYYY-MM-DD. The check is
// syntactic only: calendrically impossible dates such as 2024-02-30 pass.
// Callers that need a real calendar check must parse the value themselves.
func RequireDateISO(v any, field string) (string, error) {
	s, err := RequireString(v, field, 0, 0)
	if err != nil {
		return "", err
	}
	if !isoDateRe.MatchString(s) {
		return "", fieldErr(field, "must be in YYYY-MM-DD format")
	}
	return s, nil
}

// OptionalString returns nil for nil or empty input; otherwise the trimmed
// value, rejecting anything longer than max (DefaultMaxLength when max <= 0).
func OptionalString(v any, field string, max int) (*string, error) {
	if v == nil || v == "" {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fieldErr(field, "must be a string")
	}
	if max <= 0 {
		max = DefaultMaxLength
	}
	normalized := strings.TrimSpace(s)
	if utf8.RuneCountInString(normalized) > max {
		return nil, fieldErr(field, "is too long")
	}
	if normalized == "" {
		return nil, nil
	}
	return &normalized, nil
}

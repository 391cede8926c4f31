package validate

import "strings"

// Errors aggregates every field failure found while narrowing one request
// body, so a caller fixing a form sees all problems at once instead of the
// first.
type Errors []*FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Collector narrows an untyped JSON body field by field, recording failures
// instead of returning them, and hands back the accumulated Errors at the
// end. Zero value is ready to use.
type Collector struct {
	errs Errors
}

func (c *Collector) record(err error) {
	if err == nil {
		return
	}
	if fe, ok := err.(*FieldError); ok {
		c.errs = append(c.errs, fe)
		return
	}
	c.errs = append(c.errs, &FieldError{Field: "body", Message: err.Error()})
}

// String applies RequireString and records any failure.
func (c *Collector) String(v any, field string, min, max int) string {
	s, err := RequireString(v, field, min, max)
	c.record(err)
	return s
}

// URL applies RequireURL and records any failure.
func (c *Collector) URL(v any, field string) string {
	s, err := RequireURL(v, field)
	c.record(err)
	return s
}

// OptionalURL applies the package OptionalURL and records any failure.
func (c *Collector) OptionalURL(v any, field string) string {
	s, err := OptionalURL(v, field)
	c.record(err)
	return s
}

// Bool applies OptionalBool and records any failure.
func (c *Collector) Bool(v any, field string, fallback bool) bool {
	b, err := OptionalBool(v, field, fallback)
	c.record(err)
	return b
}

// DateISO applies RequireDateISO and records any failure.
func (c *Collector) DateISO(v any, field string) string {
	s, err := RequireDateISO(v, field)
	c.record(err)
	return s
}

// OptionalString applies the package OptionalString and records any failure.
func (c *Collector) OptionalString(v any, field string, max int) *string {
	s, err := OptionalString(v, field, max)
	c.record(err)
	return s
}

// Err returns the accumulated Errors, or nil when every field passed.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

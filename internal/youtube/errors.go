package youtube

import "net/http"

// ErrorCode classifies a failed video lookup so callers can tell "fix your
// setup" apart from "retry later".
type ErrorCode string

const (
	// CodeMissingConfig: the API key or channel id is not configured.
	CodeMissingConfig ErrorCode = "MISSING_YOUTUBE_CONFIG"
	// CodeRequestFailed: the upstream request did not complete or returned
	// a non-success status.
	CodeRequestFailed ErrorCode = "YOUTUBE_REQUEST_FAILED"
	// CodeInvalidResponse: the upstream answered but the payload was not
	// the expected shape.
	CodeInvalidResponse ErrorCode = "YOUTUBE_INVALID_RESPONSE"
)

// Error is a classified video-API failure. Status is the HTTP status the
// serving layer should map it to.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Retriable reports whether a later retry could succeed without operator
// intervention. Only transient request failures qualify.
func (e *Error) Retriable() bool { return e.Code == CodeRequestFailed }

func newError(code ErrorCode, message string) *Error {
	status := http.StatusInternalServerError
	if code == CodeRequestFailed || code == CodeInvalidResponse {
		status = http.StatusBadGateway
	}
	return &Error{Code: code, Status: status, Message: message}
}

package model

import "fmt"

// RequestError is returned for any non-2xx backend response. It carries the
// parsed error envelope when the body was valid JSON, and the raw body either
// way so callers can inspect exactly what the backend sent.
type RequestError struct {
	StatusCode int
	Success    bool
	Message    string
	Errors     map[string][]string // field validation errors, when present
	Body       []byte
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d: request failed", e.StatusCode)
}

// IsUnauthorized reports whether the backend rejected the credential.
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsValidation reports whether the backend rejected the payload.
func (e *RequestError) IsValidation() bool {
	return e.StatusCode == 422
}

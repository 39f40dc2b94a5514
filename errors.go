package hermes

import "fmt"

// RequestError means the request never reached the service or never came
// back: a transport-level fault. Cause holds the underlying error when the
// transport has one.
type RequestError struct {
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API request failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API request failed: %s", e.Message)
}

func (e *RequestError) Unwrap() error { return e.Cause }

// APIError means the service answered and signaled failure.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// APIErrorFrom coerces a bare error description from a lower layer into an
// APIError.
func APIErrorFrom(message string) *APIError {
	return &APIError{Message: message}
}

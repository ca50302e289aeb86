package providers

import "fmt"

type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}

type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "invalid API key"
}

// RequestError covers transport failures, unexpected statuses and
// undecodable bodies.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather API returned status code %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("weather API request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

package statsig

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a gate or experiment lookup has no name.
var ErrEmptyName = errors.New("name is required")

// NotFoundError is returned for an upstream 404.
type NotFoundError struct {
	Endpoint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("statsig: resource not found: %s", e.Endpoint)
}

// UnauthorizedError is returned for an upstream 401. It never carries the
// response body.
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "statsig: unauthorized: check the API key"
}

// UpstreamError covers every other failure: non-2xx statuses, transport
// errors (StatusCode 0) and undecodable success bodies.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("statsig: service error on %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("statsig: service error on %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("statsig: service error on %s: status %d", e.Endpoint, e.StatusCode)
	default:
		return fmt.Sprintf("statsig: service error on %s: %v", e.Endpoint, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

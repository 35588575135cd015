package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these without knowing about HTTP status codes; the API layer
// maps them to responses with `errors.Is()`.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// validation, including unrecognized chat content part types.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current state
	// of a resource (e.g., creating a thread that already exists).
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrUpstream signifies a failure of the model provider that was not
	// recoverable by the retry policy. Mapped to 502 Bad Gateway.
	ErrUpstream = errors.New("upstream provider failure")

	// ErrInternal signifies an unexpected error on the server. Generic so
	// implementation details never leak to the client.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)

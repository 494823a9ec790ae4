// Package errs is the error taxonomy shared by services and controllers.
// Services return these; controllers map them to HTTP statuses with Status().
package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrInvalidInput: malformed or empty request parameters. 400, never retried.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound: requested entity id does not exist. 404.
	ErrNotFound = errors.New("not found")
	// ErrLocationNotFound: center postal code cannot be geocoded. 404.
	ErrLocationNotFound = errors.New("location not found")
	// ErrQueryExecution: underlying store failure. 500, original message preserved.
	ErrQueryExecution = errors.New("query execution error")
)

func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func LocationNotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrLocationNotFound, msg)
}

// QueryExecution wraps a store error without losing its message.
func QueryExecution(cause error) error {
	return fmt.Errorf("%w: %v", ErrQueryExecution, cause)
}

// Status maps a taxonomy error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrLocationNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

package client

import (
	"errors"
	"fmt"
	"net/http"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)

// APIError is a non-2xx response from the traffic API.
type APIError struct {
	Kind    error
	Status  int
	Message string
	Code    string
	Details []v1.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

// Is reports whether target is the kind of e.
func (e *APIError) Is(target error) bool {
	return target == e.Kind
}

// kindForStatus maps an HTTP status onto an error kind.
func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrServer
	}
}

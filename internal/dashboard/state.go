package dashboard

import (
	"errors"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/client"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
)

// State is the mutation lifecycle of the controller.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateRefetching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateRefetching:
		return "refetching"
	}
	return "unknown"
}

// ErrorKind classifies the last failed operation.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindServer       ErrorKind = "server"
	KindNetwork      ErrorKind = "network"
)

// Failure is the user-facing record of the last failed operation.
type Failure struct {
	Kind    ErrorKind
	Message string
	Details []v1.FieldError
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Records       []v1.TrafficRecord
	Filtered      []v1.TrafficRecord
	Stats         v1.TrafficStats
	FilteredStats v1.TrafficStats
	Series        []v1.AggregatedPoint
	View          traffic.View
	Range         traffic.Range
	State         State
	Loading       bool
	Err           *Failure
}

// classify turns an operation error into a Failure.
func classify(err error) *Failure {
	var verr *traffic.ValidationError
	if errors.As(err, &verr) {
		return &Failure{Kind: KindValidation, Message: verr.Error(), Details: verr.Fields}
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return &Failure{Kind: KindNetwork, Message: err.Error()}
	}

	f := &Failure{Message: apiErr.Message, Details: apiErr.Details}
	switch {
	case errors.Is(err, client.ErrValidation):
		f.Kind = KindValidation
	case errors.Is(err, client.ErrConflict):
		f.Kind = KindConflict
	case errors.Is(err, client.ErrNotFound):
		f.Kind = KindNotFound
	case errors.Is(err, client.ErrUnauthorized):
		f.Kind = KindUnauthorized
	case errors.Is(err, client.ErrForbidden):
		f.Kind = KindForbidden
	default:
		f.Kind = KindServer
	}
	return f
}

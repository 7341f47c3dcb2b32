package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("traffic record not found")

	// ErrDuplicate is returned when a write would leave two records on the same date.
	ErrDuplicate = errors.New("traffic record for this date already exists")
)

// TrafficStore is the record store behind the HTTP API.
// Implementations must be safe for concurrent use.
type TrafficStore interface {
	// List returns every record ordered by date descending.
	List(ctx context.Context) ([]v1.TrafficRecord, error)

	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*v1.TrafficRecord, error)

	// FindByDate returns the record stored for date, or nil when there is none.
	FindByDate(ctx context.Context, date string) (*v1.TrafficRecord, error)

	// Create inserts record and assigns its ID when empty.
	// Returns ErrDuplicate if the date is already taken.
	Create(ctx context.Context, record *v1.TrafficRecord) error

	// Update overwrites date, visits and updatedAt of an existing record.
	// Returns ErrNotFound or ErrDuplicate.
	Update(ctx context.Context, record *v1.TrafficRecord) error

	// Delete removes the record permanently. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// ReplaceAll deletes every record and inserts records in one step.
	// It returns how many records were deleted.
	ReplaceAll(ctx context.Context, records []v1.TrafficRecord) (int, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

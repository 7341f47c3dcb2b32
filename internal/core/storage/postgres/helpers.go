package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecordRow scans one traffic_records row.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanRecordRow(row scanner) (*v1.TrafficRecord, error) {
	var r v1.TrafficRecord
	if err := row.Scan(&r.ID, &r.Date, &r.Visits, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return &r, nil
}

// mapWriteError turns a unique-index violation on date into storage.ErrDuplicate.
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return storage.ErrDuplicate
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

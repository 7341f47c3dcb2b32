// Package traffic serves the CRUD API over traffic records and enforces the
// one-record-per-date write policy.
package traffic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
	coretraffic "github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
	"github.com/aevon-lab/traffic-dashboard/internal/metrics"
	"github.com/aevon-lab/traffic-dashboard/internal/seed"
)

var (
	// ErrIDRequired is returned by Update and Delete when no id was supplied.
	ErrIDRequired = errors.New("entry id required")

	// ErrResetDisabled is returned by Reset unless resets are enabled.
	ErrResetDisabled = errors.New("data reset is disabled")
)

// ResetConfig controls POST /traffic/reset.
type ResetConfig struct {
	Enabled  bool
	SeedPath string
}

type Service struct {
	store            storage.TrafficStore
	reset            ResetConfig
	maxBodySizeBytes int64
	nowFn            func() time.Time
}

func NewService(store storage.TrafficStore, reset ResetConfig, maxBodySizeKB int) *Service {
	if store == nil {
		panic("traffic: store must not be nil")
	}
	if maxBodySizeKB <= 0 {
		maxBodySizeKB = 64
	}
	return &Service{
		store:            store,
		reset:            reset,
		maxBodySizeBytes: int64(maxBodySizeKB) * 1024,
		nowFn:            time.Now,
	}
}

// RegisterRoutes registers the record routes. The caller applies authentication.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/traffic", s.ListHandler)
	r.POST("/traffic", s.CreateHandler)

	// The id is accepted as ?id= or as a path segment.
	r.PUT("/traffic", s.UpdateHandler)
	r.PUT("/traffic/:id", s.UpdateHandler)
	r.DELETE("/traffic", s.DeleteHandler)
	r.DELETE("/traffic/:id", s.DeleteHandler)

	r.POST("/traffic/reset", s.ResetHandler)
}

// List returns every record, newest date first.
func (s *Service) List(ctx context.Context) ([]v1.TrafficRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	metrics.RecordsStored.Set(float64(len(records)))
	return records, nil
}

// Create validates in, rejects a date that is already taken, then inserts.
func (s *Service) Create(ctx context.Context, in v1.TrafficInput) (rec *v1.TrafficRecord, err error) {
	defer func() { observe("create", err) }()

	if err := coretraffic.Validate(in, coretraffic.ModeCreate); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByDate(ctx, *in.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check date: %w", err)
	}
	if existing != nil {
		return nil, storage.ErrDuplicate
	}

	now := s.nowFn().UTC()
	rec = &v1.TrafficRecord{
		Date:      *in.Date,
		Visits:    int64(in.Visits.Value),
		CreatedAt: now,
		UpdatedAt: now,
	}
	// The store's own uniqueness check catches a create that raced past FindByDate.
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}

	slog.Info("[Traffic] Created record", "id", rec.ID, "date", rec.Date, "visits", rec.Visits)
	return rec, nil
}

// Update applies the supplied fields to the record with id. A date change is
// checked against every other record first.
func (s *Service) Update(ctx context.Context, id string, in v1.TrafficInput) (rec *v1.TrafficRecord, err error) {
	defer func() { observe("update", err) }()

	if id == "" {
		return nil, ErrIDRequired
	}
	if err := coretraffic.Validate(in, coretraffic.ModeUpdate); err != nil {
		return nil, err
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *current
	if in.Date != nil && *in.Date != "" && *in.Date != current.Date {
		taken, err := s.store.FindByDate(ctx, *in.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to check date: %w", err)
		}
		if taken != nil && taken.ID != id {
			return nil, storage.ErrDuplicate
		}
		next.Date = *in.Date
	}
	if in.Visits != nil {
		next.Visits = int64(in.Visits.Value)
	}
	next.UpdatedAt = s.nowFn().UTC()

	if err := s.store.Update(ctx, &next); err != nil {
		return nil, err
	}

	slog.Info("[Traffic] Updated record", "id", id, "date", next.Date, "visits", next.Visits)
	return &next, nil
}

// Delete removes the record with id permanently.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	defer func() { observe("delete", err) }()

	if id == "" {
		return ErrIDRequired
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("[Traffic] Deleted record", "id", id)
	return nil
}

// Reset replaces the whole store with the configured seed data.
func (s *Service) Reset(ctx context.Context) (*v1.ResetSummary, error) {
	if !s.reset.Enabled {
		return nil, ErrResetDisabled
	}

	ds, err := seed.Load(s.reset.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	now := s.nowFn().UTC()
	for i := range ds.Records {
		ds.Records[i].CreatedAt = now
		ds.Records[i].UpdatedAt = now
	}

	deleted, err := s.store.ReplaceAll(ctx, ds.Records)
	if err != nil {
		return nil, fmt.Errorf("failed to replace records: %w", err)
	}

	stats := coretraffic.ComputeStats(ds.Records)
	summary := &v1.ResetSummary{
		Deleted:     deleted,
		Imported:    len(ds.Records),
		TotalVisits: stats.Total,
		AvgVisits:   coretraffic.RoundedAverage(ds.Records),
	}

	metrics.Resets.Inc()
	metrics.RecordsStored.Set(float64(summary.Imported))
	slog.Info("[Traffic] Data reset completed",
		"source", ds.Source,
		"fingerprint", ds.Fingerprint,
		"deleted", summary.Deleted,
		"imported", summary.Imported)
	return summary, nil
}

func observe(op string, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, coretraffic.ErrValidation), errors.Is(err, ErrIDRequired):
		outcome = metrics.OutcomeInvalid
	case errors.Is(err, storage.ErrDuplicate):
		outcome = metrics.OutcomeConflict
	case errors.Is(err, storage.ErrNotFound):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	metrics.RecordWrites.WithLabelValues(op, outcome).Inc()
}

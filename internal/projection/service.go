// Package projection serves the read-side views derived from the record set:
// summary statistics and chart series.
package projection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid traffic query")

// Service computes stats and series over the current record set on every read.
type Service struct {
	store storage.TrafficStore
}

// NewService creates a new projection service.
func NewService(store storage.TrafficStore) *Service {
	if store == nil {
		panic("projection: store must not be nil")
	}
	return &Service{store: store}
}

// Stats returns the statistics of the whole store and of the records inside q's range.
func (s *Service) Stats(ctx context.Context, q StatsQuery) (*v1.StatsData, error) {
	rng := traffic.Range{From: q.From, To: q.To}
	if err := rng.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	filtered, err := rng.Filter(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	slog.Debug("[Projection] Computed stats", "records", len(records), "filtered", len(filtered))
	return &v1.StatsData{
		Stats:         traffic.ComputeStats(records),
		FilteredStats: traffic.ComputeStats(filtered),
		From:          q.From,
		To:            q.To,
	}, nil
}

// Series buckets the records inside q's range by the requested view.
func (s *Service) Series(ctx context.Context, q SeriesQuery) (traffic.View, []v1.AggregatedPoint, error) {
	view, err := traffic.ParseView(q.View)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	rng := traffic.Range{From: q.From, To: q.To}
	if err := rng.Check(); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to list records: %w", err)
	}
	filtered, err := rng.Filter(records)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	points, err := traffic.AggregateByPeriod(filtered, view)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return view, points, nil
}

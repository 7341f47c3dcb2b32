package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
)

// Store is an in-memory implementation of storage.TrafficStore.
// Useful for testing and development. Date uniqueness is enforced under the
// write lock, so concurrent creates for one date cannot both succeed.
type Store struct {
	mu      sync.RWMutex
	records map[string]v1.TrafficRecord
	byDate  map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]v1.TrafficRecord),
		byDate:  make(map[string]string),
	}
}

func (s *Store) List(ctx context.Context) ([]v1.TrafficRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]v1.TrafficRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*v1.TrafficRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

func (s *Store) FindByDate(ctx context.Context, date string) (*v1.TrafficRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byDate[date]
	if !ok {
		return nil, nil
	}
	r := s.records[id]
	return &r, nil
}

func (s *Store) Create(ctx context.Context, record *v1.TrafficRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byDate[record.Date]; taken {
		return storage.ErrDuplicate
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	s.records[record.ID] = *record
	s.byDate[record.Date] = record.ID
	return nil
}

func (s *Store) Update(ctx context.Context, record *v1.TrafficRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[record.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if owner, taken := s.byDate[record.Date]; taken && owner != record.ID {
		return storage.ErrDuplicate
	}

	delete(s.byDate, current.Date)
	current.Date = record.Date
	current.Visits = record.Visits
	current.UpdatedAt = record.UpdatedAt
	s.records[record.ID] = current
	s.byDate[current.Date] = current.ID

	*record = current
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return storage.ErrNotFound
	}
	delete(s.records, id)
	delete(s.byDate, r.Date)
	return nil
}

func (s *Store) ReplaceAll(ctx context.Context, records []v1.TrafficRecord) (int, error) {
	records = append([]v1.TrafficRecord(nil), records...)

	next := make(map[string]v1.TrafficRecord, len(records))
	nextByDate := make(map[string]string, len(records))
	for i := range records {
		r := &records[i]
		if _, taken := nextByDate[r.Date]; taken {
			return 0, storage.ErrDuplicate
		}
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		next[r.ID] = *r
		nextByDate[r.Date] = r.ID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := len(s.records)
	s.records = next
	s.byDate = nextByDate
	return deleted, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

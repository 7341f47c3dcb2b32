// Package storagetest holds behaviour checks shared by every TrafficStore backend.
package storagetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
)

// Run exercises store against the TrafficStore contract.
// newStore must return an empty store for each call.
func Run(t *testing.T, newStore func(t *testing.T) storage.TrafficStore) {
	t.Helper()
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	rec := func(date string, visits int64) *v1.TrafficRecord {
		return &v1.TrafficRecord{Date: date, Visits: visits, CreatedAt: now, UpdatedAt: now}
	}

	t.Run("create assigns id and list orders by date desc", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, r := range []*v1.TrafficRecord{rec("2025-03-01", 10), rec("2025-03-03", 30), rec("2025-03-02", 20)} {
			require.NoError(t, s.Create(ctx, r))
			require.NotEmpty(t, r.ID)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, []string{"2025-03-03", "2025-03-02", "2025-03-01"},
			[]string{list[0].Date, list[1].Date, list[2].Date})
		require.True(t, list[0].CreatedAt.Equal(now))
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		list, err := newStore(t).List(context.Background())
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("duplicate date rejected", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Create(ctx, rec("2025-03-01", 10)))
		require.ErrorIs(t, s.Create(ctx, rec("2025-03-01", 99)), storage.ErrDuplicate)

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, int64(10), list[0].Visits)
	})

	t.Run("get and find by date", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		r := rec("2025-03-01", 10)
		require.NoError(t, s.Create(ctx, r))

		got, err := s.Get(ctx, r.ID)
		require.NoError(t, err)
		require.Equal(t, "2025-03-01", got.Date)

		_, err = s.Get(ctx, "missing")
		require.ErrorIs(t, err, storage.ErrNotFound)

		found, err := s.FindByDate(ctx, "2025-03-01")
		require.NoError(t, err)
		require.Equal(t, r.ID, found.ID)

		found, err = s.FindByDate(ctx, "2025-03-09")
		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run("update keeps createdAt and moves date", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		r := rec("2025-03-01", 10)
		require.NoError(t, s.Create(ctx, r))

		later := now.Add(time.Hour)
		upd := &v1.TrafficRecord{ID: r.ID, Date: "2025-03-05", Visits: 55, UpdatedAt: later}
		require.NoError(t, s.Update(ctx, upd))
		require.True(t, upd.CreatedAt.Equal(now))
		require.True(t, upd.UpdatedAt.Equal(later))

		old, err := s.FindByDate(ctx, "2025-03-01")
		require.NoError(t, err)
		require.Nil(t, old)

		moved, err := s.FindByDate(ctx, "2025-03-05")
		require.NoError(t, err)
		require.Equal(t, int64(55), moved.Visits)
	})

	t.Run("update onto taken date and missing id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, b := rec("2025-03-01", 1), rec("2025-03-02", 2)
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.Create(ctx, b))

		err := s.Update(ctx, &v1.TrafficRecord{ID: b.ID, Date: "2025-03-01", Visits: 2, UpdatedAt: now})
		require.ErrorIs(t, err, storage.ErrDuplicate)

		err = s.Update(ctx, &v1.TrafficRecord{ID: "missing", Date: "2025-03-09", Visits: 2, UpdatedAt: now})
		require.ErrorIs(t, err, storage.ErrNotFound)

		// Same date on the same record is not a conflict.
		require.NoError(t, s.Update(ctx, &v1.TrafficRecord{ID: a.ID, Date: "2025-03-01", Visits: 7, UpdatedAt: now}))
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		r := rec("2025-03-01", 10)
		require.NoError(t, s.Create(ctx, r))
		require.NoError(t, s.Delete(ctx, r.ID))
		require.ErrorIs(t, s.Delete(ctx, r.ID), storage.ErrNotFound)

		// The date is free again.
		require.NoError(t, s.Create(ctx, rec("2025-03-01", 3)))
	})

	t.Run("replace all", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Create(ctx, rec("2025-01-01", 1)))
		require.NoError(t, s.Create(ctx, rec("2025-01-02", 2)))

		deleted, err := s.ReplaceAll(ctx, []v1.TrafficRecord{*rec("2025-02-01", 10), *rec("2025-02-02", 20), *rec("2025-02-03", 30)})
		require.NoError(t, err)
		require.Equal(t, 2, deleted)

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "2025-02-03", list[0].Date)
	})

	t.Run("replace all rejects duplicate input and keeps data", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Create(ctx, rec("2025-01-01", 1)))

		_, err := s.ReplaceAll(ctx, []v1.TrafficRecord{*rec("2025-02-01", 10), *rec("2025-02-01", 20)})
		require.ErrorIs(t, err, storage.ErrDuplicate)

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "2025-01-01", list[0].Date)
	})

	t.Run("concurrent creates for one date admit a single winner", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const workers = 8
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(v int64) {
				defer wg.Done()
				if err := s.Create(ctx, rec("2025-05-05", v)); err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}(int64(i))
		}
		wg.Wait()

		require.Equal(t, 1, wins)
		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(context.Background()))
	})
}

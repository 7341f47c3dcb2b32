package projection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
	storagemocks "github.com/aevon-lab/traffic-dashboard/internal/mocks/storage"
)

func sampleRecords() []v1.TrafficRecord {
	return []v1.TrafficRecord{
		{ID: "4", Date: "2025-03-10", Visits: 400},
		{ID: "3", Date: "2025-03-03", Visits: 300},
		{ID: "2", Date: "2025-03-01", Visits: 200},
		{ID: "1", Date: "2025-02-28", Visits: 100},
	}
}

func TestService_Stats(t *testing.T) {
	store := storagemocks.NewTrafficStore(t)
	store.EXPECT().List(mock.Anything).Return(sampleRecords(), nil).Once()

	data, err := NewService(store).Stats(t.Context(), StatsQuery{From: "2025-3-1", To: "2025-03-05"})
	require.NoError(t, err)

	require.Equal(t, int64(1000), data.Stats.Total)
	require.Equal(t, 4, data.Stats.Count)
	require.Equal(t, v1.Period{Start: "2025-02-28", End: "2025-03-10"}, data.Stats.Period)

	require.Equal(t, int64(500), data.FilteredStats.Total)
	require.Equal(t, 2, data.FilteredStats.Count)
	require.InDelta(t, 250.0, data.FilteredStats.Average, 1e-9)
	require.Equal(t, int64(300), data.FilteredStats.Highest)
	require.Equal(t, int64(200), data.FilteredStats.Lowest)
	require.Equal(t, "2025-3-1", data.From)
}

func TestService_Stats_InvalidRangeSkipsStore(t *testing.T) {
	store := storagemocks.NewTrafficStore(t)

	_, err := NewService(store).Stats(t.Context(), StatsQuery{From: "last week"})
	require.ErrorIs(t, err, ErrInvalidQuery)
	require.ErrorIs(t, err, traffic.ErrInvalidRange)
}

func TestService_Stats_StoreError(t *testing.T) {
	store := storagemocks.NewTrafficStore(t)
	store.EXPECT().List(mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := NewService(store).Stats(t.Context(), StatsQuery{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidQuery)
}

func TestService_Series(t *testing.T) {
	tests := []struct {
		name  string
		query SeriesQuery
		view  traffic.View
		want  []v1.AggregatedPoint
	}{
		{
			name:  "default view is daily",
			query: SeriesQuery{From: "2025-03-01", To: "2025-03-03"},
			view:  traffic.ViewDaily,
			want: []v1.AggregatedPoint{
				{BucketKey: "2025-03-01", Visits: 200, Label: "Mar 1"},
				{BucketKey: "2025-03-03", Visits: 300, Label: "Mar 3"},
			},
		},
		{
			name:  "weekly",
			query: SeriesQuery{View: "weekly"},
			view:  traffic.ViewWeekly,
			want: []v1.AggregatedPoint{
				{BucketKey: "2025-02-23", Visits: 300, Label: "Week of Feb 23, 2025"},
				{BucketKey: "2025-03-02", Visits: 300, Label: "Week of Mar 2, 2025"},
				{BucketKey: "2025-03-09", Visits: 400, Label: "Week of Mar 9, 2025"},
			},
		},
		{
			name:  "monthly",
			query: SeriesQuery{View: "monthly"},
			view:  traffic.ViewMonthly,
			want: []v1.AggregatedPoint{
				{BucketKey: "2025-02", Visits: 100, Label: "February 2025"},
				{BucketKey: "2025-03", Visits: 900, Label: "March 2025"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := storagemocks.NewTrafficStore(t)
			store.EXPECT().List(mock.Anything).Return(sampleRecords(), nil).Once()

			view, points, err := NewService(store).Series(t.Context(), tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.view, view)
			require.Equal(t, tc.want, points)
		})
	}
}

func TestService_Series_InvalidView(t *testing.T) {
	store := storagemocks.NewTrafficStore(t)

	_, _, err := NewService(store).Series(t.Context(), SeriesQuery{View: "yearly"})
	require.ErrorIs(t, err, ErrInvalidQuery)
	require.ErrorIs(t, err, traffic.ErrInvalidView)
}

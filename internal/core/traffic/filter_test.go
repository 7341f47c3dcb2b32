package traffic

import (
	"testing"

	"github.com/stretchr/testify/require"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

func dates(records []v1.TrafficRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Date)
	}
	return out
}

func TestFilterByRange(t *testing.T) {
	records := []v1.TrafficRecord{
		rec("2025-03-05", 5),
		rec("2025-03-01", 1),
		rec("2025-03-10", 10),
		rec("2025-02-28", 28),
	}

	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{name: "no bounds", want: []string{"2025-03-05", "2025-03-01", "2025-03-10", "2025-02-28"}},
		{name: "both bounds inclusive", from: "2025-03-01", to: "2025-03-05", want: []string{"2025-03-05", "2025-03-01"}},
		{name: "lower only", from: "2025-03-05", want: []string{"2025-03-05", "2025-03-10"}},
		{name: "upper only", to: "2025-03-01", want: []string{"2025-03-01", "2025-02-28"}},
		{name: "unpadded bounds", from: "2025-3-1", to: "2025-3-9", want: []string{"2025-03-05", "2025-03-01"}},
		{name: "inverted bounds", from: "2025-03-10", to: "2025-03-01", want: []string{}},
		{name: "single day", from: "2025-03-10", to: "2025-03-10", want: []string{"2025-03-10"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FilterByRange(records, tc.from, tc.to)
			require.NoError(t, err)
			require.Equal(t, tc.want, dates(got))
		})
	}
}

func TestFilterByRange_NoBoundsReturnsInput(t *testing.T) {
	records := []v1.TrafficRecord{rec("2025-03-05", 5)}
	got, err := FilterByRange(records, "", "")
	require.NoError(t, err)
	require.Same(t, &records[0], &got[0])
}

func TestFilterByRange_InvalidBound(t *testing.T) {
	_, err := FilterByRange(nil, "yesterday", "")
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = FilterByRange(nil, "", "2025-13-01")
	require.ErrorIs(t, err, ErrInvalidRange)

	require.ErrorIs(t, Range{To: "soon"}.Check(), ErrInvalidRange)
	require.NoError(t, Range{From: "2025-1-1"}.Check())
}

func TestFilterByRange_SkipsMalformedRecordDates(t *testing.T) {
	got, err := Range{From: "2025-01-01"}.Filter([]v1.TrafficRecord{rec("bogus", 1), rec("2025-01-02", 2)})
	require.NoError(t, err)
	require.Equal(t, []string{"2025-01-02"}, dates(got))
}

package traffic

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

// View is the bucketing granularity of a chart series.
type View string

const (
	ViewDaily   View = "daily"
	ViewWeekly  View = "weekly"
	ViewMonthly View = "monthly"
)

const (
	dailyLabelLayout   = "Jan 2"
	weeklyLabelLayout  = "Jan 2, 2006"
	monthlyLabelLayout = "January 2006"
	monthKeyLayout     = "2006-01"
)

// ErrInvalidView marks an unknown view name.
var ErrInvalidView = errors.New("invalid view")

// ParseView maps a view name to a View. Empty defaults to daily.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewDaily, nil
	case ViewDaily, ViewWeekly, ViewMonthly:
		return View(s), nil
	}
	return "", fmt.Errorf("%w: %q (want daily, weekly or monthly)", ErrInvalidView, s)
}

// bucket is the grouping state of one period while the series is built.
type bucket struct {
	key    string
	label  string
	visits decimal.Decimal
}

// AggregateByPeriod groups records into daily, weekly (Sunday-anchored) or
// monthly buckets and sums visits per bucket. Points are emitted in
// ascending date order regardless of input order. Periods with no records
// produce no point. Records with an unparsable date are skipped.
func AggregateByPeriod(records []v1.TrafficRecord, view View) ([]v1.AggregatedPoint, error) {
	if _, err := ParseView(string(view)); err != nil {
		return nil, err
	}

	sorted := SortRecords(records, SortByDate, Ascending)
	sum := Operators[OpSum]

	var buckets []*bucket
	index := make(map[string]*bucket)

	for _, r := range sorted {
		day, err := ParseDate(r.Date)
		if err != nil {
			continue
		}
		v := decimal.NewFromInt(r.Visits)

		// Daily keeps one point per record.
		if view == ViewDaily || view == "" {
			buckets = append(buckets, &bucket{
				key:    r.Date,
				label:  day.Format(dailyLabelLayout),
				visits: sum.Initial(v),
			})
			continue
		}

		key, label := periodKey(day, view)
		if b, ok := index[key]; ok {
			b.visits = sum.Apply(b.visits, v)
			continue
		}
		b := &bucket{key: key, label: label, visits: sum.Initial(v)}
		index[key] = b
		buckets = append(buckets, b)
	}

	points := make([]v1.AggregatedPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, v1.AggregatedPoint{
			BucketKey: b.key,
			Visits:    b.visits.IntPart(),
			Label:     b.label,
		})
	}
	return points, nil
}

// periodKey returns the bucket key and label of day for weekly and monthly views.
func periodKey(day time.Time, view View) (key, label string) {
	if view == ViewMonthly {
		return day.Format(monthKeyLayout), day.Format(monthlyLabelLayout)
	}
	start := weekStart(day)
	return start.Format(DateLayout), "Week of " + start.Format(weeklyLabelLayout)
}

// SortField selects the column SortRecords orders by.
type SortField string

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortByDate   SortField = "date"
	SortByVisits SortField = "visits"

	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortRecords returns a sorted copy of records. The sort is stable so ties
// keep input order. Dates are compared as canonical strings.
func SortRecords(records []v1.TrafficRecord, field SortField, order SortOrder) []v1.TrafficRecord {
	out := make([]v1.TrafficRecord, len(records))
	copy(out, records)

	less := func(a, b v1.TrafficRecord) bool {
		if field == SortByVisits {
			return a.Visits < b.Visits
		}
		return a.Date < b.Date
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

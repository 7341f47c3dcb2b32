package traffic

import (
	"github.com/shopspring/decimal"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

// ComputeStats summarises records in a single pass.
// An empty input yields all-zero numbers and an empty period.
func ComputeStats(records []v1.TrafficRecord) v1.TrafficStats {
	if len(records) == 0 {
		return v1.TrafficStats{}
	}

	ops := [...]string{OpCount, OpSum, OpMin, OpMax}
	var acc [len(ops)]decimal.Decimal

	first := decimal.NewFromInt(records[0].Visits)
	for i, op := range ops {
		acc[i] = Operators[op].Initial(first)
	}
	start, end := records[0].Date, records[0].Date

	for _, r := range records[1:] {
		v := decimal.NewFromInt(r.Visits)
		for i, op := range ops {
			acc[i] = Operators[op].Apply(acc[i], v)
		}

		// Canonical YYYY-MM-DD orders lexicographically.
		if r.Date < start {
			start = r.Date
		}
		if r.Date > end {
			end = r.Date
		}
	}

	count, total, lowest, highest := acc[0], acc[1], acc[2], acc[3]
	average, _ := total.Div(count).Float64()

	return v1.TrafficStats{
		Total:   total.IntPart(),
		Average: average,
		Highest: highest.IntPart(),
		Lowest:  lowest.IntPart(),
		Count:   int(count.IntPart()),
		Period:  v1.Period{Start: start, End: end},
	}
}

// RoundedAverage returns the mean visits rounded half away from zero,
// as reported by a data reset.
func RoundedAverage(records []v1.TrafficRecord) int64 {
	if len(records) == 0 {
		return 0
	}
	values := make([]decimal.Decimal, len(records))
	for i, r := range records {
		values[i] = decimal.NewFromInt(r.Visits)
	}
	total, _ := Fold(OpSum, values)
	return total.Div(decimal.NewFromInt(int64(len(records)))).Round(0).IntPart()
}

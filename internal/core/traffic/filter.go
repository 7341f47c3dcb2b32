package traffic

import (
	"errors"
	"time"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

// ErrInvalidRange marks a date-range bound that could not be parsed.
var ErrInvalidRange = errors.New("invalid date range")

// Range is an optional inclusive [From, To] date interval. Empty means unbounded.
type Range struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.From == "" && r.To == ""
}

// Check parses both bounds and reports the first malformed one.
func (r Range) Check() error {
	if r.From != "" {
		if _, err := parseBound(r.From); err != nil {
			return err
		}
	}
	if r.To != "" {
		if _, err := parseBound(r.To); err != nil {
			return err
		}
	}
	return nil
}

// FilterByRange returns the records whose date lies within the inclusive
// bounds present, in input order. With both bounds empty the input slice is
// returned unchanged. Comparison is on parsed calendar dates.
func FilterByRange(records []v1.TrafficRecord, from, to string) ([]v1.TrafficRecord, error) {
	if from == "" && to == "" {
		return records, nil
	}

	var lo, hi time.Time
	var err error
	if from != "" {
		if lo, err = parseBound(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if hi, err = parseBound(to); err != nil {
			return nil, err
		}
	}

	out := make([]v1.TrafficRecord, 0, len(records))
	for _, r := range records {
		d, err := parseBound(r.Date)
		if err != nil {
			continue
		}
		if from != "" && d.Before(lo) {
			continue
		}
		if to != "" && d.After(hi) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Filter applies FilterByRange with r's bounds.
func (r Range) Filter(records []v1.TrafficRecord) ([]v1.TrafficRecord, error) {
	return FilterByRange(records, r.From, r.To)
}

package v1

import (
	"bytes"
	"encoding/json"
	"time"
)

// TrafficRecord is one daily visits entry.
type TrafficRecord struct {
	// ID is assigned by the store on creation. Empty before that.
	ID string `json:"id,omitempty"`

	// Date is the calendar day in canonical "YYYY-MM-DD" form.
	// It is unique across the whole store.
	Date string `json:"date"`

	// Visits is the number of visits recorded for Date, within [0, 1_000_000].
	Visits int64 `json:"visits"`

	// CreatedAt and UpdatedAt are set by the write path, never by clients.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TrafficInput is the body accepted by POST and PUT /traffic.
// Both fields are pointers so an absent key can be told apart from a zero value.
type TrafficInput struct {
	Date   *string     `json:"date,omitempty"`
	Visits *VisitCount `json:"visits,omitempty"`

	// DateMalformed is set when the date key held a non-string JSON value.
	// Date stays nil in that case.
	DateMalformed bool `json:"-"`
}

// UnmarshalJSON implements json.Unmarshaler. A wrong JSON type for date is
// recorded rather than returned so every field can be validated together.
func (in *TrafficInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date   json.RawMessage `json:"date"`
		Visits *VisitCount     `json:"visits"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*in = TrafficInput{Visits: raw.Visits}
	date := bytes.TrimSpace(raw.Date)
	if len(date) == 0 || bytes.Equal(date, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(date, &s); err != nil {
		in.DateMalformed = true
		return nil
	}
	in.Date = &s
	return nil
}

// VisitCount is the raw visits value of a TrafficInput.
// Decoding never fails on a wrong JSON type; IsNumber records whether the
// token was a JSON number so validation can report it alongside other fields.
type VisitCount struct {
	Value    float64
	IsNumber bool
}

// NewVisitCount wraps a client-side integer.
func NewVisitCount(n int64) *VisitCount {
	return &VisitCount{Value: float64(n), IsNumber: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *VisitCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"', '{', '[', 't', 'f':
		*v = VisitCount{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*v = VisitCount{}
		return nil
	}
	*v = VisitCount{Value: f, IsNumber: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v VisitCount) MarshalJSON() ([]byte, error) {
	if !v.IsNumber {
		return []byte("null"), nil
	}
	return json.Marshal(v.Value)
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// TrafficStats summarises a set of records.
type TrafficStats struct {
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
	Highest int64   `json:"highest"`
	Lowest  int64   `json:"lowest"`
	Count   int     `json:"count"`
	Period  Period  `json:"period"`
}

// Period is the inclusive date span covered by a record set.
// Both ends are empty for an empty set.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AggregatedPoint is one bucket of a daily, weekly or monthly series.
type AggregatedPoint struct {
	BucketKey string `json:"bucketKey"`
	Visits    int64  `json:"visits"`
	Label     string `json:"label"`
}

// ListTrafficResponse is returned by GET /traffic.
type ListTrafficResponse struct {
	Success bool            `json:"success"`
	Data    []TrafficRecord `json:"data"`
	Message string          `json:"message,omitempty"`
}

// TrafficResponse is returned by POST and PUT /traffic.
type TrafficResponse struct {
	Success bool          `json:"success"`
	Data    TrafficRecord `json:"data"`
	Message string        `json:"message,omitempty"`
}

// DeleteTrafficResponse is returned by DELETE /traffic.
type DeleteTrafficResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// StatsData holds summary statistics for the whole store and for the requested range.
type StatsData struct {
	Stats         TrafficStats `json:"stats"`
	FilteredStats TrafficStats `json:"filteredStats"`
	From          string       `json:"from,omitempty"`
	To            string       `json:"to,omitempty"`
}

// StatsResponse is returned by GET /traffic/stats.
type StatsResponse struct {
	Success bool      `json:"success"`
	Data    StatsData `json:"data"`
}

// SeriesResponse is returned by GET /traffic/series.
type SeriesResponse struct {
	Success bool              `json:"success"`
	View    string            `json:"view"`
	Data    []AggregatedPoint `json:"data"`
}

// ResetSummary reports what a data reset replaced.
type ResetSummary struct {
	Deleted     int   `json:"deleted"`
	Imported    int   `json:"imported"`
	TotalVisits int64 `json:"totalVisits"`
	AvgVisits   int64 `json:"avgVisits"`
}

// ResetResponse is returned by POST /traffic/reset.
type ResetResponse struct {
	Success bool         `json:"success"`
	Data    ResetSummary `json:"data"`
	Message string       `json:"message,omitempty"`
}

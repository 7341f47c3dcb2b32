package traffic

import (
	"errors"
	"math"
	"strings"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

// Visits bounds, inclusive.
const (
	MinVisits = 0
	MaxVisits = 1_000_000
)

// Mode selects which fields Validate requires.
type Mode int

const (
	// ModeCreate requires both date and visits.
	ModeCreate Mode = iota
	// ModeUpdate accepts either field but requires at least one.
	ModeUpdate
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError lists every rule an input broke.
type ValidationError struct {
	Fields []v1.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validate checks an input against the record invariants. Rules are
// evaluated independently and all failures are reported together.
func Validate(in v1.TrafficInput, mode Mode) error {
	var fields []v1.FieldError
	add := func(field, msg string) {
		fields = append(fields, v1.FieldError{Field: field, Message: msg})
	}

	// An empty date string counts as absent.
	dateGiven := in.DateMalformed || (in.Date != nil && *in.Date != "")
	if mode == ModeUpdate && !dateGiven && in.Visits == nil {
		add("", "At least one field (date or visits) must be provided")
		return &ValidationError{Fields: fields}
	}

	switch {
	case in.DateMalformed:
		add("date", "date must be a string")
	case !dateGiven:
		if mode == ModeCreate {
			add("date", "date is required")
		}
	case !IsValidDate(*in.Date):
		add("date", `Invalid date format. Required format: YYYY-MM-DD (e.g., "2025-03-01")`)
	}

	switch {
	case in.Visits == nil:
		if mode == ModeCreate {
			add("visits", "visits is required")
		}
	case !in.Visits.IsNumber:
		add("visits", "visits must be a number")
	case !isIntegral(in.Visits.Value) || in.Visits.Value < MinVisits || in.Visits.Value > MaxVisits:
		add("visits", "Invalid visits value. Must be an integer between 0 and 1,000,000")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateRecord checks a complete record, e.g. one read from a seed file.
func ValidateRecord(r v1.TrafficRecord) error {
	date := r.Date
	return Validate(v1.TrafficInput{Date: &date, Visits: v1.NewVisitCount(r.Visits)}, ModeCreate)
}

func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

package traffic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
)

func strPtr(s string) *string { return &s }

func decodeInput(t *testing.T, body string) v1.TrafficInput {
	t.Helper()
	var in v1.TrafficInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func fieldNames(err error) []string {
	verr, ok := err.(*ValidationError)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "valid", body: `{"date":"2025-03-01","visits":120}`},
		{name: "upper bound accepted", body: `{"date":"2025-03-01","visits":1000000}`},
		{name: "zero accepted", body: `{"date":"2025-03-01","visits":0}`},
		{name: "integral float accepted", body: `{"date":"2025-03-01","visits":12.0}`},
		{name: "over upper bound", body: `{"date":"2025-03-01","visits":1000001}`, wantFields: []string{"visits"}},
		{name: "negative", body: `{"date":"2025-03-01","visits":-1}`, wantFields: []string{"visits"}},
		{name: "fractional", body: `{"date":"2025-03-01","visits":1.5}`, wantFields: []string{"visits"}},
		{name: "string visits", body: `{"date":"2025-03-01","visits":"12"}`, wantFields: []string{"visits"}},
		{name: "impossible date with valid visits", body: `{"date":"2025-02-30","visits":10}`, wantFields: []string{"date"}},
		{name: "impossible date with invalid visits", body: `{"date":"2025-02-30","visits":-5}`, wantFields: []string{"date", "visits"}},
		{name: "unpadded date", body: `{"date":"2025-3-1","visits":10}`, wantFields: []string{"date"}},
		{name: "datetime", body: `{"date":"2025-03-01T00:00:00Z","visits":10}`, wantFields: []string{"date"}},
		{name: "missing both", body: `{}`, wantFields: []string{"date", "visits"}},
		{name: "null visits", body: `{"date":"2025-03-01","visits":null}`, wantFields: []string{"visits"}},
		{name: "empty date", body: `{"date":"","visits":3}`, wantFields: []string{"date"}},
		{name: "numeric date with invalid visits", body: `{"date":123,"visits":-1}`, wantFields: []string{"date", "visits"}},
		{name: "null date", body: `{"date":null,"visits":3}`, wantFields: []string{"date"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(decodeInput(t, tc.body), ModeCreate)
			if len(tc.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			require.Equal(t, tc.wantFields, fieldNames(err))
		})
	}
}

func TestValidate_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "date only", body: `{"date":"2024-02-29"}`},
		{name: "visits only", body: `{"visits":5}`},
		{name: "nothing", body: `{}`, wantFields: []string{""}},
		{name: "bad date only", body: `{"date":"2023-02-29"}`, wantFields: []string{"date"}},
		{name: "empty date counts as absent", body: `{"date":""}`, wantFields: []string{""}},
		{name: "empty date with visits", body: `{"date":"","visits":7}`},
		{name: "object date", body: `{"date":{}}`, wantFields: []string{"date"}},
		{name: "bad visits only", body: `{"visits":true}`, wantFields: []string{"visits"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(decodeInput(t, tc.body), ModeUpdate)
			if len(tc.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			require.Equal(t, tc.wantFields, fieldNames(err))
		})
	}
}

func TestValidateRecord(t *testing.T) {
	require.NoError(t, ValidateRecord(v1.TrafficRecord{Date: "2025-03-01", Visits: 10}))
	require.Error(t, ValidateRecord(v1.TrafficRecord{Date: "2025-13-01", Visits: 10}))
	require.Error(t, ValidateRecord(v1.TrafficRecord{Date: "2025-03-01", Visits: -10}))
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(v1.TrafficInput{Date: strPtr("nope")}, ModeCreate)
	require.Error(t, err)
	require.Contains(t, err.Error(), "YYYY-MM-DD")
	require.Contains(t, err.Error(), "visits is required")
}

func TestParseDate(t *testing.T) {
	valid := []string{"2025-03-01", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		require.Equal(t, s, d.Format(DateLayout))
	}

	invalid := []string{"", "2025-02-30", "2023-02-29", "2025-00-10", "2025-3-01", "25-03-01", "2025/03/01", "2025-03-01 "}
	for _, s := range invalid {
		require.False(t, IsValidDate(s), s)
	}
}

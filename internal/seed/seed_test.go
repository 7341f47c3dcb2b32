package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSeed is a test helper that writes a seed file into dir.
func writeSeed(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeSeed(t, t.TempDir(), "data.json", `[
		{"date": "2025-03-02", "visits": 200},
		{"date": "2025-03-01", "visits": 100}
	]`)

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	require.Equal(t, "2025-03-01", ds.Records[0].Date)
	require.Equal(t, int64(200), ds.Records[1].Visits)
	require.Len(t, ds.Fingerprint, 64)
	require.Equal(t, path, ds.Source)
}

func TestLoad_DirectoryMergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "march.yaml", `
- date: "2025-03-01"
  visits: 10
`)
	writeSeed(t, dir, "april.yml", `
- date: "2025-04-01"
  visits: 20
`)
	writeSeed(t, dir, "notes.txt", "ignored")

	ds, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	require.Equal(t, "2025-03-01", ds.Records[0].Date)
	require.Equal(t, "2025-04-01", ds.Records[1].Date)
}

func TestLoad_DuplicateDateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "a.json", `[{"date": "2025-03-01", "visits": 1}]`)
	writeSeed(t, dir, "b.json", `[{"date": "2025-03-01", "visits": 2}]`)

	_, err := Load(dir)
	require.ErrorContains(t, err, "already defined")
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad calendar date", `[{"date": "2025-02-30", "visits": 1}]`, "Invalid date format"},
		{"visits out of range", `[{"date": "2025-02-03", "visits": 1000001}]`, "Invalid visits value"},
		{"missing visits", `[{"date": "2025-02-03"}]`, "visits is required"},
		{"not a list", `{"date": "2025-02-03"}`, "cannot unmarshal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.content))
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	records, err := Parse([]byte("[]"))
	require.NoError(t, err)
	require.Empty(t, records)
}

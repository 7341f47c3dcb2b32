// Package seed loads the record set that a data reset imports.
package seed

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	v1 "github.com/aevon-lab/traffic-dashboard/internal/api/v1"
	"github.com/aevon-lab/traffic-dashboard/internal/core/traffic"
)

// Dataset is a validated seed file ready for import.
type Dataset struct {
	Records []v1.TrafficRecord
	// Fingerprint is the SHA-256 of the raw file contents, logged on reset.
	Fingerprint string
	Source      string
}

// rawEntry is the on-disk shape. JSON seed files parse too, being valid YAML.
type rawEntry struct {
	Date   string `yaml:"date"`
	Visits *int64 `yaml:"visits"`
}

// Load reads path, which may be a single .json/.yaml/.yml file or a
// directory of them. Every entry is validated and dates must be unique
// across the whole set. Records are returned in ascending date order.
func Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("seed path: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = listSeedFiles(path); err != nil {
			return nil, err
		}
	}

	h := sha256.New()
	seen := make(map[string]string)
	var records []v1.TrafficRecord

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading seed file %s: %w", file, err)
		}
		h.Write(data)

		entries, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing seed file %s: %w", file, err)
		}
		for _, r := range entries {
			if prev, dup := seen[r.Date]; dup {
				return nil, fmt.Errorf("seed file %s: date %s already defined in %s", file, r.Date, prev)
			}
			seen[r.Date] = file
			records = append(records, r)
		}
	}

	records = traffic.SortRecords(records, traffic.SortByDate, traffic.Ascending)
	return &Dataset{
		Records:     records,
		Fingerprint: fmt.Sprintf("%x", h.Sum(nil)),
		Source:      path,
	}, nil
}

// Parse decodes and validates a list of {date, visits} entries.
func Parse(data []byte) ([]v1.TrafficRecord, error) {
	var raw []rawEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]v1.TrafficRecord, 0, len(raw))
	for i, e := range raw {
		if e.Visits == nil {
			return nil, fmt.Errorf("entry %d (%s): visits is required", i, e.Date)
		}
		r := v1.TrafficRecord{Date: e.Date, Visits: *e.Visits}
		if err := traffic.ValidateRecord(r); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Date, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func listSeedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading seed dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

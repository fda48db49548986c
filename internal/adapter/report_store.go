package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "repattern.dev/pkg/repattern/internal/model"
)

// Report file names inside a reports directory.
const (
	ReportsFileName = "reports.json"
	SummaryFileName = "summary.json"
	ShardDirPrefix  = "shard_"
)

// ErrNoReports is returned when a directory holds no saved reports.
var ErrNoReports = errors.New("no reports found")

// ReportStore persists the outcome of a detection run.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.ChangeSetReport, summary m.Summary) error
	LoadReports(dir m.Path) ([]m.ChangeSetReport, m.Summary, error)
	// ShardDirs lists the shard_* subdirectories of dir, sorted.
	ShardDirs(dir m.Path) ([]m.Path, error)
}

// LocalReportStore writes reports as JSON files.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReports writes reports.json and summary.json into dir, creating it if needed.
func (s *LocalReportStore) SaveReports(dir m.Path, reports []m.ChangeSetReport, summary m.Summary) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory %s: %w", dir, err)
	}

	if reports == nil {
		reports = []m.ChangeSetReport{}
	}

	if err := writeJSON(filepath.Join(string(dir), ReportsFileName), reports); err != nil {
		return err
	}

	return writeJSON(filepath.Join(string(dir), SummaryFileName), summary)
}

// LoadReports reads what SaveReports wrote.
func (s *LocalReportStore) LoadReports(dir m.Path) ([]m.ChangeSetReport, m.Summary, error) {
	var (
		reports []m.ChangeSetReport
		summary m.Summary
	)

	if err := readJSON(filepath.Join(string(dir), ReportsFileName), &reports); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, summary, fmt.Errorf("%w in %s", ErrNoReports, dir)
		}

		return nil, summary, err
	}

	if err := readJSON(filepath.Join(string(dir), SummaryFileName), &summary); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, summary, err
		}

		summary = m.NewSummary("")
		for _, report := range reports {
			summary.Add(report)
		}
	}

	return reports, summary, nil
}

// ShardDirs lists the shard subdirectories of dir.
func (s *LocalReportStore) ShardDirs(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory %s: %w", dir, err)
	}

	var shards []m.Path

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), ShardDirPrefix) {
			shards = append(shards, m.Path(filepath.Join(string(dir), entry.Name())))
		}
	}

	sort.Slice(shards, func(i, j int) bool { return shards[i] < shards[j] })

	return shards, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func readJSON(path string, v any) error {
	// #nosec G304 - path is built from the user's reports directory
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

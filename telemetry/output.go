package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/herd/config"
)

// RunInfo identifies one simulation run in the output directory.
type RunInfo struct {
	ID        string    `yaml:"id"`
	Seed      int64     `yaml:"seed"`
	StartedAt time.Time `yaml:"started_at"`
	Mode      string    `yaml:"mode"`
}

// NewRunInfo returns RunInfo with a fresh random ID.
func NewRunInfo(seed int64, mode string) RunInfo {
	return RunInfo{
		ID:        uuid.NewString(),
		Seed:      seed,
		StartedAt: time.Now().UTC(),
		Mode:      mode,
	}
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	perfFile      *os.File
	bookmarkFile  *os.File

	// Track if headers have been written
	telemetryHeaderWritten bool
	perfHeaderWritten      bool
	bookmarkHeaderWritten  bool
}

// NewOutputManager creates the output directory and opens the CSV files.
// Returns nil if dir is empty (output disabled); all methods accept a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	f, err = os.Create(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		om.telemetryFile.Close()
		om.perfFile.Close()
		return nil, fmt.Errorf("creating bookmarks.csv: %w", err)
	}
	om.bookmarkFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRun saves the run identity as run.yaml.
func (om *OutputManager) WriteRun(run RunInfo) error {
	if om == nil {
		return nil
	}
	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshaling run info: %w", err)
	}
	if err := os.WriteFile(filepath.Join(om.dir, "run.yaml"), data, 0644); err != nil {
		return fmt.Errorf("writing run.yaml: %w", err)
	}
	return nil
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.telemetryFile, []WindowStats{stats}, &om.telemetryHeaderWritten); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}
	if err := writeRecords(om.perfFile, records, &om.perfHeaderWritten); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteBookmark writes a bookmark record to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.bookmarkFile, []Bookmark{b}, &om.bookmarkHeaderWritten); err != nil {
		return fmt.Errorf("writing bookmark: %w", err)
	}
	return nil
}

// SnapshotDir returns where bookmark snapshots are written.
func (om *OutputManager) SnapshotDir() string {
	if om == nil {
		return ""
	}
	return filepath.Join(om.dir, "snapshots")
}

// writeRecords marshals records, including the header only on the first write.
func writeRecords(f *os.File, records interface{}, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.telemetryFile, om.perfFile, om.bookmarkFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

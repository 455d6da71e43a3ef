package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/herd/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// nil receiver is a no-op
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for i := 1; i <= 2; i++ {
		stats := WindowStats{RunID: "abc", WindowEndTick: int32(i * 600), Score: i}
		if err := om.WriteTelemetry(stats); err != nil {
			t.Fatalf("WriteTelemetry failed: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{}, 600); err != nil {
		t.Fatalf("WritePerf failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "run_id,restart,window_end,sim_time,score") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Contains(lines[0], "WindowStartTick") {
		t.Error("csv:\"-\" field leaked into header")
	}
	if !strings.HasPrefix(lines[2], "abc,0,1200,") {
		t.Errorf("unexpected second row %q", lines[2])
	}

	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(perf), "window_end,avg_tick_us") {
		t.Errorf("unexpected perf header: %q", perf)
	}
}

func TestOutputManagerWritesRunAndConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	run := NewRunInfo(42, "headless")
	if run.ID == "" {
		t.Fatal("expected a run id")
	}
	if err := om.WriteRun(run); err != nil {
		t.Fatalf("WriteRun failed: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "run.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "id: "+run.ID) || !strings.Contains(string(data), "seed: 42") {
		t.Errorf("run.yaml missing fields:\n%s", data)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not reload: %v", err)
	}
}

func TestOutputManagerWritesBookmarks(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	bookmarks := []Bookmark{
		{Type: BookmarkFirstDelivery, Tick: 600, Description: "first"},
		{Type: BookmarkFieldCleared, Tick: 4200, Description: "done"},
	}
	for _, b := range bookmarks {
		if err := om.WriteBookmark(b); err != nil {
			t.Fatalf("WriteBookmark failed: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 || lines[0] != "restart,type,tick,description" {
		t.Fatalf("unexpected bookmarks.csv:\n%s", data)
	}
	if lines[1] != "0,first_delivery,600,first" {
		t.Errorf("first row = %q", lines[1])
	}
	if om.SnapshotDir() != filepath.Join(dir, "snapshots") {
		t.Errorf("snapshot dir = %q", om.SnapshotDir())
	}
}

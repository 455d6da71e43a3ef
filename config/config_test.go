package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Field.Width != 800 || cfg.Field.Height != 600 {
		t.Errorf("field = %gx%g, want 800x600", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Hero.Speed != 4 {
		t.Errorf("hero speed = %g, want 4", cfg.Hero.Speed)
	}
	if cfg.Derived.FollowSpeed != 3 {
		t.Errorf("follow speed = %g, want 3", cfg.Derived.FollowSpeed)
	}
	if cfg.Herd.Capacity != 5 {
		t.Errorf("capacity = %d, want 5", cfg.Herd.Capacity)
	}
	if cfg.Motion.Epsilon != 0.1 {
		t.Errorf("motion epsilon = %g, want 0.1", cfg.Motion.Epsilon)
	}

	want := Rect{MinX: 50, MinY: 50, MaxX: 750, MaxY: 550}
	if cfg.Derived.PatrolBounds != want {
		t.Errorf("patrol bounds = %+v, want %+v", cfg.Derived.PatrolBounds, want)
	}
	if cfg.Derived.StatsWindowTick != 600 {
		t.Errorf("stats window = %d ticks, want 600", cfg.Derived.StatsWindowTick)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("herd:\n  capacity: 3\nyard:\n  points: 2\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Herd.Capacity != 3 {
		t.Errorf("capacity = %d, want 3", cfg.Herd.Capacity)
	}
	if cfg.Yard.Points != 2 {
		t.Errorf("points = %d, want 2", cfg.Yard.Points)
	}
	// Untouched keys keep their defaults
	if cfg.Herd.RecruitRadius != 50 {
		t.Errorf("recruit radius = %g, want 50", cfg.Herd.RecruitRadius)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero capacity", "herd:\n  capacity: 0\n", "herd capacity"},
		{"inverted wait", "animal:\n  wait_min_ticks: 100\n  wait_max_ticks: 50\n", "wait ticks"},
		{"inverted spawn", "spawn:\n  min_count: 9\n  max_count: 5\n", "spawn count"},
		{"margin too wide", "field:\n  margin: 400\n", "margin"},
		{"negative epsilon", "motion:\n  epsilon: -1\n", "motion epsilon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Herd.Capacity = 7

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Herd.Capacity != 7 {
		t.Errorf("capacity = %d, want 7", loaded.Herd.Capacity)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{MinX: 50, MinY: 50, MaxX: 750, MaxY: 550}
	if !r.Contains(50, 550) {
		t.Error("edges should be inside")
	}
	if r.Contains(49.9, 300) {
		t.Error("point left of MinX should be outside")
	}
}

package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 2

// Snapshot holds the herd state at one tick.
type Snapshot struct {
	Version int    `json:"version"`
	RunID   string `json:"run_id"`
	RNGSeed int64  `json:"rng_seed"`
	Restart int    `json:"restart"`

	FieldWidth  float64 `json:"field_width"`
	FieldHeight float64 `json:"field_height"`

	Tick  int32 `json:"tick"`
	Score int   `json:"score"`

	Hero    HeroState     `json:"hero"`
	Animals []AnimalState `json:"animals"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// HeroState holds the hero's position and target.
type HeroState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	TargetX float64 `json:"target_x"`
	TargetY float64 `json:"target_y"`
}

// AnimalState holds one animal's state, in roster order.
type AnimalState struct {
	ID        uint32  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Following bool    `json:"following"`
	Patrol    string  `json:"patrol,omitempty"`
	TargetX   float64 `json:"target_x"`
	TargetY   float64 `json:"target_y"`
	WaitTicks int32   `json:"wait_ticks,omitempty"`
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	// Ticks restart from zero on reset, so the restart count keeps names unique.
	name := fmt.Sprintf("snapshot_r%d_%d", snapshot.Restart, snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name += "_" + sanitized
	}
	path := filepath.Join(dir, name+".json")

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snapshot.Version, SnapshotVersion)
	}
	return &snapshot, nil
}

// Package renderer draws the field, the yard and the herd with raylib.
package renderer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpriteSet holds the idle and walk frames for one kind of entity.
// The artwork faces left.
type SpriteSet struct {
	Idle []rl.Texture2D
	Walk []rl.Texture2D
}

// LoadSpriteSet loads every frame under dir. On any failure the frames
// already loaded are released and an error naming the file is returned;
// callers fall back to shapes.
func LoadSpriteSet(dir string, idle, walk []string) (*SpriteSet, error) {
	s := &SpriteSet{}
	var err error
	if s.Idle, err = loadFrames(dir, idle); err != nil {
		return nil, err
	}
	if s.Walk, err = loadFrames(dir, walk); err != nil {
		s.Unload()
		return nil, err
	}
	return s, nil
}

func loadFrames(dir string, names []string) ([]rl.Texture2D, error) {
	frames := make([]rl.Texture2D, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			unloadAll(frames)
			return nil, fmt.Errorf("sprite frame %s: %w", path, err)
		}
		tex := rl.LoadTexture(path)
		if !rl.IsTextureValid(tex) {
			unloadAll(frames)
			return nil, fmt.Errorf("sprite frame %s: decode failed", path)
		}
		frames = append(frames, tex)
	}
	return frames, nil
}

// Frame returns the texture for the given strip and frame index.
func (s *SpriteSet) Frame(walking bool, frame int) (rl.Texture2D, bool) {
	strip := s.Idle
	if walking {
		strip = s.Walk
	}
	if len(strip) == 0 {
		return rl.Texture2D{}, false
	}
	return strip[frame%len(strip)], true
}

// Unload frees the textures.
func (s *SpriteSet) Unload() {
	if s == nil {
		return
	}
	unloadAll(s.Idle)
	unloadAll(s.Walk)
	s.Idle, s.Walk = nil, nil
}

func unloadAll(frames []rl.Texture2D) {
	for _, tex := range frames {
		rl.UnloadTexture(tex)
	}
}

// loadOrWarn loads a sprite set, logging and returning nil on failure.
func loadOrWarn(kind, dir string, idle, walk []string) *SpriteSet {
	s, err := LoadSpriteSet(dir, idle, walk)
	if err != nil {
		slog.Warn("sprites unavailable, drawing shapes", "kind", kind, "error", err)
		return nil
	}
	return s
}

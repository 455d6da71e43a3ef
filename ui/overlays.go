package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID identifies a debug overlay.
type OverlayID uint8

const (
	OverlayRadii OverlayID = iota
	OverlayTargets
	OverlayFollowLines
	overlayCount
)

// OverlayDescriptor is the label and hotkey of an overlay.
type OverlayDescriptor struct {
	ID       OverlayID
	Name     string
	Key      int32
	KeyLabel string
}

var overlayDescriptors = [overlayCount]OverlayDescriptor{
	{ID: OverlayRadii, Name: "Radii", Key: rl.KeyV, KeyLabel: "V"},
	{ID: OverlayTargets, Name: "Targets", Key: rl.KeyT, KeyLabel: "T"},
	{ID: OverlayFollowLines, Name: "Follow lines", Key: rl.KeyL, KeyLabel: "L"},
}

// OverlayRegistry tracks which overlays are switched on. All start off.
type OverlayRegistry struct {
	enabled [overlayCount]bool
}

// NewOverlayRegistry returns a registry with every overlay off.
func NewOverlayRegistry() *OverlayRegistry {
	return &OverlayRegistry{}
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if id >= overlayCount {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// IsEnabled reports whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return id < overlayCount && r.enabled[id]
}

// All returns the overlay descriptors in display order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return overlayDescriptors[:]
}

// HandleKeyPress toggles the overlay bound to key.
// The second result is false when no overlay uses that key.
func (r *OverlayRegistry) HandleKeyPress(key int32) (bool, bool) {
	for _, desc := range overlayDescriptors {
		if desc.Key == key {
			return r.Toggle(desc.ID), true
		}
	}
	return false, false
}

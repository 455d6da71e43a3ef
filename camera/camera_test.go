package camera

import (
	"math"
	"testing"
)

func TestNewFitsField(t *testing.T) {
	cam := New(800, 600, 800, 600)

	sx, sy := cam.Scale()
	if sx != 1 || sy != 1 {
		t.Errorf("expected scale 1, got (%f, %f)", sx, sy)
	}
	x, y, w, h := cam.FieldRect()
	if x != 0 || y != 0 || w != 800 || h != 600 {
		t.Errorf("field rect = (%f, %f, %f, %f), want full viewport", x, y, w, h)
	}
}

func TestLetterbox(t *testing.T) {
	// Wide window: field scales to height and is centered horizontally
	cam := New(1600, 600, 800, 600)

	sx, sy := cam.WorldToScreen(0, 0)
	if math.Abs(sx-400) > 0.01 || math.Abs(sy) > 0.01 {
		t.Errorf("field origin at (%f, %f), want (400, 0)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(800, 600)
	if math.Abs(sx-1200) > 0.01 || math.Abs(sy-600) > 0.01 {
		t.Errorf("field corner at (%f, %f), want (1200, 600)", sx, sy)
	}

	// Clicks in the letterbox land outside the field
	wx, _ := cam.ScreenToWorld(100, 300)
	if wx >= 0 {
		t.Errorf("letterbox click mapped to x=%f, want negative", wx)
	}
}

func TestStretched(t *testing.T) {
	cam := NewStretched(80, 24, 800, 600)

	sx, sy := cam.Scale()
	if math.Abs(sx-0.1) > 1e-9 || math.Abs(sy-0.04) > 1e-9 {
		t.Errorf("scale = (%f, %f), want (0.1, 0.04)", sx, sy)
	}
	cx, cy := cam.WorldToScreen(400, 300)
	if math.Abs(cx-40) > 0.01 || math.Abs(cy-12) > 0.01 {
		t.Errorf("field center at (%f, %f), want (40, 12)", cx, cy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cams := []*Camera{
		New(1280, 720, 800, 600),
		NewStretched(120, 40, 800, 600),
	}

	testCases := []struct{ sx, sy float64 }{
		{640, 360},
		{100, 100},
		{10, 5},
	}

	for _, cam := range cams {
		for _, tc := range testCases {
			wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
			sx, sy := cam.WorldToScreen(wx, wy)
			if math.Abs(sx-tc.sx) > 0.01 || math.Abs(sy-tc.sy) > 0.01 {
				t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
					tc.sx, tc.sy, wx, wy, sx, sy)
			}
		}
	}
}

func TestResize(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Resize(400, 300)

	sx, _ := cam.Scale()
	if sx != 0.5 {
		t.Errorf("scale after resize = %f, want 0.5", sx)
	}
	if cam.ViewportW != 400 || cam.ViewportH != 300 {
		t.Errorf("viewport = %fx%f, want 400x300", cam.ViewportW, cam.ViewportH)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(800, 600, 800, 600)

	if !cam.IsVisible(400, 300, 10) {
		t.Error("center should be visible")
	}
	if !cam.IsVisible(-5, 300, 10) {
		t.Error("circle overlapping the left edge should be visible")
	}
	if cam.IsVisible(-50, 300, 10) {
		t.Error("circle fully left of the viewport should not be visible")
	}
}

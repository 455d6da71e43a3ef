package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/components"
)

func TestAdvanceAnimationCycles(t *testing.T) {
	var anim Animation
	// 3 idle frames, 2 ticks each
	want := []int{0, 1, 1, 2, 2, 0, 0, 1}
	for i, w := range want {
		AdvanceAnimation(&anim, false, 2, 3, 6)
		if anim.Frame != w {
			t.Fatalf("tick %d: frame = %d, want %d", i, anim.Frame, w)
		}
	}
}

func TestAdvanceAnimationSwitchRestarts(t *testing.T) {
	var anim Animation
	for i := 0; i < 5; i++ {
		AdvanceAnimation(&anim, false, 1, 4, 6)
	}
	if anim.Frame == 0 {
		t.Fatal("idle strip did not advance")
	}

	AdvanceAnimation(&anim, true, 1, 4, 6)
	if !anim.Walking || anim.Frame != 0 {
		t.Errorf("after starting to walk: walking=%v frame=%d, want true and 0", anim.Walking, anim.Frame)
	}

	AdvanceAnimation(&anim, true, 1, 4, 6)
	if anim.Frame != 1 {
		t.Errorf("walk frame = %d, want 1", anim.Frame)
	}
}

func TestAdvanceAnimationNoFrames(t *testing.T) {
	anim := Animation{Frame: 3}
	AdvanceAnimation(&anim, false, 1, 0, 0)
	if anim.Frame != 0 {
		t.Errorf("frame = %d with empty strip, want 0", anim.Frame)
	}
}

func TestAnimationSetRetainDropsStale(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)
	var ents []ecs.Entity
	for i := 0; i < 3; i++ {
		ents = append(ents, mapper.NewEntity(&components.Position{X: float64(i)}))
	}

	set := NewAnimationSet()
	for _, e := range ents {
		AdvanceAnimation(set.Get(e), true, 1, 1, 1)
	}
	if set.Len() != 3 || !set.Get(ents[0]).Walking {
		t.Fatalf("len=%d walking=%v, want 3 tracked walkers", set.Len(), set.Get(ents[0]).Walking)
	}

	set.Retain(ents[2:])
	if set.Len() != 1 {
		t.Fatalf("len after retain = %d, want 1", set.Len())
	}

	// A dropped entity comes back idle at frame 0.
	if anim := set.Get(ents[0]); anim.Walking || anim.Frame != 0 {
		t.Errorf("re-added animation = %+v, want fresh idle", *anim)
	}

	set.Forget(ents[2])
	set.Forget(ents[0])
	if set.Len() != 0 {
		t.Errorf("len after forget = %d, want 0", set.Len())
	}
}

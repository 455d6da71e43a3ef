package systems

import (
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// Animation tracks which sprite frame an entity shows. Walking selects the
// walk strip; idle entities play the idle strip.
type Animation struct {
	Walking bool
	Frame   int
	elapsed int
}

// AdvanceAnimation moves anim forward one tick. Switching between idle and
// walk restarts the new strip at frame 0. Frame counts of zero leave the
// frame at 0.
func AdvanceAnimation(anim *Animation, moved bool, frameTicks, idleFrames, walkFrames int) {
	if moved != anim.Walking {
		anim.Walking = moved
		anim.Frame = 0
		anim.elapsed = 0
		return
	}

	frames := idleFrames
	if anim.Walking {
		frames = walkFrames
	}
	if frames <= 0 {
		anim.Frame = 0
		return
	}

	anim.elapsed++
	if anim.elapsed >= frameTicks {
		anim.elapsed = 0
		anim.Frame = (anim.Frame + 1) % frames
	}
}

// AnimationSet holds animation state per entity.
type AnimationSet struct {
	anims map[ecs.Entity]*Animation
}

// NewAnimationSet returns an empty set.
func NewAnimationSet() *AnimationSet {
	return &AnimationSet{anims: make(map[ecs.Entity]*Animation)}
}

// Get returns the animation for e, starting a fresh idle one if e is new.
func (s *AnimationSet) Get(e ecs.Entity) *Animation {
	anim, ok := s.anims[e]
	if !ok {
		anim = &Animation{}
		s.anims[e] = anim
	}
	return anim
}

// Forget drops the animation for e.
func (s *AnimationSet) Forget(e ecs.Entity) {
	delete(s.anims, e)
}

// Retain drops every animation whose entity is not in live.
func (s *AnimationSet) Retain(live []ecs.Entity) {
	for e := range s.anims {
		if !slices.Contains(live, e) {
			delete(s.anims, e)
		}
	}
}

// Len returns the number of tracked entities.
func (s *AnimationSet) Len() int {
	return len(s.anims)
}

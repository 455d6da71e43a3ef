package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/camera"
	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/config"
	"github.com/pthm-cable/herd/game"
	"github.com/pthm-cable/herd/systems"
)

const (
	heroRadius   = 15
	animalRadius = 10
)

var (
	heroColor     = rl.Red
	animalColor   = rl.White
	followerColor = rl.Color{R: 250, G: 235, B: 200, A: 255}
)

// HerdRenderer draws the hero and the animals, animating sprites from each
// entity's motion signal.
type HerdRenderer struct {
	cfg *config.AssetsConfig

	heroSprites   *SpriteSet
	animalSprites *SpriteSet

	heroAnim    systems.Animation
	animalAnims *systems.AnimationSet
	views       []game.EntityView
	live        []ecs.Entity

	initialized bool
}

// NewHerdRenderer creates a renderer for the configured sprite frames.
func NewHerdRenderer(cfg *config.AssetsConfig) *HerdRenderer {
	return &HerdRenderer{
		cfg:         cfg,
		animalAnims: systems.NewAnimationSet(),
	}
}

// Init loads textures (must be called after the raylib window is created).
func (h *HerdRenderer) Init() {
	if h.initialized {
		return
	}
	h.heroSprites = loadOrWarn("hero", h.cfg.Dir, h.cfg.HeroIdle, h.cfg.HeroWalk)
	h.animalSprites = loadOrWarn("animal", h.cfg.Dir, h.cfg.AnimalIdle, h.cfg.AnimalWalk)
	h.initialized = true
}

// Forget drops per-entity animation state. Wire it to the game's collect
// callback.
func (h *HerdRenderer) Forget(e ecs.Entity) {
	h.animalAnims.Forget(e)
}

// Advance steps every animation by one simulation frame.
func (h *HerdRenderer) Advance(g *game.Game) {
	hero := g.Hero()
	h.advance(&h.heroAnim, hero.Motion.Moved, h.heroSprites)

	h.sync(g)
	for _, a := range h.views {
		h.advance(h.animalAnims.Get(a.Entity), a.Motion.Moved, h.animalSprites)
	}
}

// sync reloads the animal views so a restart shows up even while paused.
func (h *HerdRenderer) sync(g *game.Game) {
	h.views = g.Animals(h.views[:0])
	h.live = h.live[:0]
	for _, a := range h.views {
		h.live = append(h.live, a.Entity)
	}
	h.animalAnims.Retain(h.live)
}

func (h *HerdRenderer) advance(anim *systems.Animation, moved bool, s *SpriteSet) {
	if s == nil {
		return
	}
	systems.AdvanceAnimation(anim, moved, h.cfg.FrameTicks, len(s.Idle), len(s.Walk))
}

// Draw renders animals first so the hero stays on top.
func (h *HerdRenderer) Draw(g *game.Game, cam *camera.Camera) {
	if !h.initialized {
		h.Init()
	}
	h.sync(g)

	for _, a := range h.views {
		color := animalColor
		if a.Following {
			color = followerColor
		}
		h.drawEntity(cam, a, h.animalSprites, h.animalAnims.Get(a.Entity), animalRadius, color)
	}

	h.drawEntity(cam, g.Hero(), h.heroSprites, &h.heroAnim, heroRadius, heroColor)
}

func (h *HerdRenderer) drawEntity(cam *camera.Camera, v game.EntityView, s *SpriteSet, anim *systems.Animation, radius float32, color rl.Color) {
	if !cam.IsVisible(v.Position.X, v.Position.Y, float64(radius)*2) {
		return
	}
	sx, sy := cam.WorldToScreen(v.Position.X, v.Position.Y)
	scale, _ := cam.Scale()

	var tex rl.Texture2D
	ok := false
	if s != nil && anim != nil {
		tex, ok = s.Frame(anim.Walking, anim.Frame)
	}
	if !ok {
		rl.DrawCircleV(rl.Vector2{X: float32(sx), Y: float32(sy)}, radius*float32(scale), color)
		return
	}

	w, ht := float32(tex.Width), float32(tex.Height)
	src := rl.Rectangle{Width: w, Height: ht}
	if v.Motion.Facing == components.FacingRight {
		src.Width = -w
	}
	dst := rl.Rectangle{
		X:      float32(sx),
		Y:      float32(sy),
		Width:  w * float32(scale),
		Height: ht * float32(scale),
	}
	origin := rl.Vector2{X: dst.Width / 2, Y: dst.Height / 2}
	rl.DrawTexturePro(tex, src, dst, origin, 0, rl.White)
}

// Unload frees textures.
func (h *HerdRenderer) Unload() {
	if !h.initialized {
		return
	}
	h.heroSprites.Unload()
	h.animalSprites.Unload()
	h.initialized = false
}

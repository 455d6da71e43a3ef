package game

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"pgregory.net/rapid"

	"github.com/pthm-cable/herd/config"
)

func TestRecruitWithinRadius(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		wantJoin bool
	}{
		{"close", 410, 300, true},
		{"just inside", 449, 300, true},
		{"on radius", 450, 300, false},
		{"outside", 460, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(emptyConfig(t), 1)
			e := g.SpawnAnimal(tt.x, tt.y)

			res := g.Step()

			_, animal, ok := g.Animal(e)
			if !ok {
				t.Fatal("animal vanished")
			}
			if animal.Following != tt.wantJoin {
				t.Errorf("following = %v, want %v", animal.Following, tt.wantJoin)
			}
			wantSize := 0
			if tt.wantJoin {
				wantSize = 1
			}
			if g.GroupSize() != wantSize || res.Recruited != wantSize {
				t.Errorf("group=%d recruited=%d, want %d", g.GroupSize(), res.Recruited, wantSize)
			}
		})
	}
}

func TestDeliverFollower(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	e := g.SpawnAnimal(410, 300)
	g.Step()
	if g.GroupSize() != 1 {
		t.Fatalf("group size = %d after recruit, want 1", g.GroupSize())
	}

	g.PlaceHero(700, 500)
	g.MoveAnimal(e, 705, 500)
	res := g.Step()

	if res.Delivered != 1 || res.ScoreDelta != 1 {
		t.Errorf("result %+v, want one delivery worth 1", res)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if g.GroupSize() != 0 || g.AnimalCount() != 0 {
		t.Errorf("group=%d animals=%d, want 0 and 0", g.GroupSize(), g.AnimalCount())
	}
	if _, _, ok := g.Animal(e); ok {
		t.Error("delivered animal still live")
	}
}

func TestPatrollingAnimalInYardIsNotDelivered(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	e := g.SpawnAnimal(705, 500) // hero at (400, 300), far away

	for i := 0; i < 10; i++ {
		g.Step()
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if _, _, ok := g.Animal(e); !ok {
		t.Error("patrolling animal was collected")
	}
}

func TestGroupCapacity(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	var spawned []ecs.Entity
	for i := 0; i < 6; i++ {
		spawned = append(spawned, g.SpawnAnimal(400+float64(i)*3, 300))
	}

	res := g.Step()

	if res.Recruited != 5 || g.GroupSize() != 5 {
		t.Fatalf("recruited=%d group=%d, want 5", res.Recruited, g.GroupSize())
	}
	group := g.Group()
	for i := range group {
		if group[i] != spawned[i] {
			t.Errorf("group[%d] = %v, want %v (roster order)", i, group[i], spawned[i])
		}
	}
	if _, animal, _ := g.Animal(spawned[5]); animal.Following {
		t.Error("sixth animal joined a full group")
	}
}

func TestSameTickRecruitAndDeliverReusesSlots(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	g.PlaceHero(700, 500)
	for i := 0; i < 7; i++ {
		g.SpawnAnimal(705, 495+float64(i)*2)
	}

	res := g.Step()

	if res.Recruited != 7 || res.Delivered != 7 {
		t.Errorf("recruited=%d delivered=%d, want 7 and 7", res.Recruited, res.Delivered)
	}
	if g.Score() != 7 || g.AnimalCount() != 0 || g.GroupSize() != 0 {
		t.Errorf("score=%d animals=%d group=%d, want 7, 0, 0", g.Score(), g.AnimalCount(), g.GroupSize())
	}
}

func TestFollowingIsPermanent(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	e := g.SpawnAnimal(410, 300)
	g.Step()

	g.SetHeroTarget(50, 50)
	for i := 0; i < 200; i++ {
		g.Step()
	}

	pos, animal, ok := g.Animal(e)
	if !ok || !animal.Following {
		t.Fatal("follower stopped following")
	}
	hero := g.Hero().Position
	if hero.X != 50 || hero.Y != 50 {
		t.Errorf("hero at %+v, want (50, 50)", hero)
	}
	if d := math.Hypot(pos.X-hero.X, pos.Y-hero.Y); d > 40 {
		t.Errorf("follower %g units from hero, want within 40", d)
	}
}

func TestIdleStepsLeaveScore(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	g.SpawnAnimal(100, 100)
	for i := 0; i < 100; i++ {
		if res := g.Step(); res.ScoreDelta != 0 {
			t.Fatalf("tick %d: score delta %d with hero idle", res.Tick, res.ScoreDelta)
		}
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
}

func TestStepInvariantsProperty(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		g := NewGame(cfg, seed)
		initial := g.AnimalCount()
		following := make(map[ecs.Entity]bool)
		lastScore := 0

		for tick := 0; tick < 400; tick++ {
			if tick%50 == 0 {
				x := rapid.Float64Range(0, cfg.Field.Width).Draw(t, "x")
				y := rapid.Float64Range(0, cfg.Field.Height).Draw(t, "y")
				g.SetHeroTarget(x, y)
			}
			g.Step()

			if g.GroupSize() > cfg.Herd.Capacity {
				t.Fatalf("tick %d: group size %d over capacity", tick, g.GroupSize())
			}
			if g.Score() < lastScore {
				t.Fatalf("tick %d: score fell from %d to %d", tick, lastScore, g.Score())
			}
			lastScore = g.Score()
			if g.Score()+g.AnimalCount() != initial {
				t.Fatalf("tick %d: score %d + animals %d != %d", tick, g.Score(), g.AnimalCount(), initial)
			}

			for _, e := range g.Group() {
				if _, a, ok := g.Animal(e); !ok || !a.Following {
					t.Fatalf("tick %d: group member %v not a live follower", tick, e)
				}
			}
			for e := range following {
				if _, a, ok := g.Animal(e); ok && !a.Following {
					t.Fatalf("tick %d: animal %v stopped following", tick, e)
				}
			}
			for _, a := range g.Animals(nil) {
				if a.Following {
					following[a.Entity] = true
				}
			}
		}
	})
}

func TestHeroMotionUsesSharedEpsilon(t *testing.T) {
	tests := []struct {
		name      string
		epsilon   float64
		wantMoved bool
	}{
		{"default", 0.1, true},
		{"step below epsilon", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := emptyConfig(t)
			cfg.Motion.Epsilon = tt.epsilon
			g := NewGame(cfg, 1)
			g.SetHeroTarget(500, 300)

			g.Step()

			hero := g.Hero()
			if hero.Position.X != 404 {
				t.Fatalf("hero x = %g, want 404", hero.Position.X)
			}
			if hero.Motion.Moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", hero.Motion.Moved, tt.wantMoved)
			}
		})
	}
}

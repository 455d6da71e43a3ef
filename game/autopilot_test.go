package game

import (
	"testing"

	"github.com/pthm-cable/herd/config"
)

func TestAutopilotHeadsForNearestFreeAnimal(t *testing.T) {
	g := NewGame(emptyConfig(t), 1)
	g.SpawnAnimal(100, 100)
	g.SpawnAnimal(480, 320)

	a := NewAutopilot()
	a.Drive(g)

	target, toYard := a.Target()
	if toYard {
		t.Fatal("autopilot chose the yard with free animals and an empty group")
	}
	if target.X != 480 || target.Y != 320 {
		t.Errorf("target = %+v, want nearest animal at (480, 320)", target)
	}
	if g.HeroTarget() != target {
		t.Errorf("hero target %+v not updated to %+v", g.HeroTarget(), target)
	}
}

func TestAutopilotGoesToYardWhenFull(t *testing.T) {
	cfg := emptyConfig(t)
	cfg.Herd.Capacity = 1
	g := NewGame(cfg, 1)
	g.SpawnAnimal(410, 300)
	g.SpawnAnimal(100, 100)
	g.Step()

	a := NewAutopilot()
	a.Drive(g)
	if target, toYard := a.Target(); !toYard || target != g.Yard().Position {
		t.Errorf("target = %+v toYard=%v, want yard anchor", target, toYard)
	}
}

func TestHeadlessRunDeliversEveryAnimal(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	for _, seed := range []int64{1, 2, 3} {
		g, err := NewGameWithOptions(Options{Config: cfg, Seed: seed, Headless: true})
		if err != nil {
			t.Fatal(err)
		}
		initial := g.AnimalCount()

		for i := 0; i < 20000 && g.AnimalCount() > 0; i++ {
			g.UpdateHeadless()
		}

		if g.AnimalCount() != 0 {
			t.Errorf("seed %d: %d animals left after %d ticks", seed, g.AnimalCount(), g.Tick())
		}
		if g.Score() != initial {
			t.Errorf("seed %d: score = %d, want %d", seed, g.Score(), initial)
		}
	}
}

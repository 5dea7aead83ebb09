package game

import (
	"testing"

	"github.com/pthm-cable/genesis/config"
	"github.com/pthm-cable/genesis/evolution"
)

func headlessGame(t *testing.T) *Game {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	g, err := NewGame(cfg, Options{Headless: true, Seed: 42})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessReachesRNAUnderIdealConditions(t *testing.T) {
	g := headlessGame(t)

	p := g.Params()
	p.Set(evolution.ParamTemperature, 0.8)
	p.Set(evolution.ParamEnergy, 0.8)
	p.Set(evolution.ParamTurbulence, 0)

	// 100 progress at 5/s is 20 sim-seconds; leave generous headroom.
	g.RunHeadless(5000, evolution.StageRNA)

	if got := g.State().Stage; !got.AtLeast(evolution.StageRNA) {
		t.Errorf("stage = %v, want at least %v", got, evolution.StageRNA)
	}
}

func TestHeadlessStallsUnderHostileConditions(t *testing.T) {
	g := headlessGame(t)

	p := g.Params()
	p.Set(evolution.ParamTemperature, 0)
	p.Set(evolution.ParamEnergy, 0)
	p.Set(evolution.ParamTurbulence, 1)

	g.RunHeadless(2000, evolution.StageRNA)

	st := g.State()
	if st.Stage != evolution.StageAminoAcids {
		t.Errorf("stage = %v, want %v", st.Stage, evolution.StageAminoAcids)
	}
	if st.Progress != 0 {
		t.Errorf("progress = %v, want 0", st.Progress)
	}
}

func TestPopulationSpawnsOnTransition(t *testing.T) {
	g := headlessGame(t)

	before := g.creatureCount

	p := g.Params()
	p.Set(evolution.ParamTemperature, 0.8)
	p.Set(evolution.ParamEnergy, 0.8)

	// Walk the ocean phase, retuning at each stage's goldilocks target.
	for i := 0; i < 3; i++ {
		stage := g.State().Stage
		if temp, energy, ok := evolution.Target(stage); ok {
			p.Set(evolution.ParamTemperature, temp)
			p.Set(evolution.ParamEnergy, energy)
		}
		next := stage + 1
		g.RunHeadless(g.Tick()+5000, next)
	}

	if got := g.State().Stage; got != evolution.StageLife {
		t.Fatalf("stage = %v, want %v", got, evolution.StageLife)
	}
	if g.creatureCount <= before {
		t.Errorf("creature count %d did not grow from %d after reaching life", g.creatureCount, before)
	}
}

func TestGateAdvanceSpawnsLandPopulation(t *testing.T) {
	g := headlessGame(t)

	p := g.Params()
	for i := 0; i < 3; i++ {
		stage := g.State().Stage
		if temp, energy, ok := evolution.Target(stage); ok {
			p.Set(evolution.ParamTemperature, temp)
			p.Set(evolution.ParamEnergy, energy)
		}
		g.RunHeadless(g.Tick()+5000, stage+1)
	}
	if got := g.State().Stage; got != evolution.StageLife {
		t.Fatalf("stage = %v, want %v", got, evolution.StageLife)
	}

	before := g.creatureCount

	// Stage changes driven through the gate, not the simulator, must still
	// reconcile the population on the next step.
	g.gate.Advance(50)
	g.Step()

	if got := g.State().Stage; got != evolution.StagePangea {
		t.Fatalf("stage = %v, want %v", got, evolution.StagePangea)
	}
	if g.creatureCount <= before {
		t.Errorf("creature count %d did not grow from %d after crossing onto land", g.creatureCount, before)
	}
}

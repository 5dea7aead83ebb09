package evolution

import (
	"math"
	"testing"
)

func TestScorePerfectMatch(t *testing.T) {
	p := Params{Temperature: 0.8, Energy: 0.8}
	if got := Score(p, StageAminoAcids); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Score = %v, want 1.0", got)
	}
}

func TestScoreByStage(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		stage Stage
		want  float64
	}{
		{"amino acids off by half", Params{Temperature: 0.3, Energy: 0.8}, StageAminoAcids, 0.75},
		{"rna exact", Params{Temperature: 0.5, Energy: 0.5}, StageRNA, 1.0},
		{"protocell exact", Params{Temperature: 0.3, Energy: 0.2}, StageProtocell, 1.0},
		{"worst case amino acids", Params{Temperature: 0, Energy: 0}, StageAminoAcids, 0.2},
		{"life has no target", Params{Temperature: 0.5, Energy: 0.5}, StageLife, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.p, tt.stage); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTickIdealConditions(t *testing.T) {
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)

	sim.Tick(1.0)

	st := sim.State()
	if st.Stability != 100 {
		t.Errorf("stability = %v, want 100 (clamped)", st.Stability)
	}
	if math.Abs(st.Progress-5.0) > 1e-9 {
		t.Errorf("progress = %v, want 5.0", st.Progress)
	}
	if st.Stage != StageAminoAcids {
		t.Errorf("stage = %v, want amino_acids", st.Stage)
	}
}

func TestTickFullTurbulence(t *testing.T) {
	// Turbulence drains stability even under perfect conditions, but the
	// clamp at 100 absorbs it here; progress still advances since both
	// gates hold.
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 1.0}
	sim := NewSimulator(p)

	sim.Tick(1.0)

	st := sim.State()
	if st.Stability != 100 {
		t.Errorf("stability = %v, want 100 (5 gained, 2 drained, clamped)", st.Stability)
	}
	if math.Abs(st.Progress-5.0) > 1e-9 {
		t.Errorf("progress = %v, want 5.0", st.Progress)
	}
}

func TestTickNoProgressWithoutScoreGate(t *testing.T) {
	// conditionScore = 0.7 exactly: the gate requires strictly greater.
	p := &Params{Temperature: 0.5, Energy: 0.5, Turbulence: 0}
	sim := NewSimulator(p) // amino acids target (0.8, 0.8) -> score 0.7

	for i := 0; i < 100; i++ {
		sim.Tick(0.1)
	}

	if st := sim.State(); st.Progress != 0 {
		t.Errorf("progress = %v, want 0 (score gate not satisfied)", st.Progress)
	}
}

func TestTickNoProgressWithoutStability(t *testing.T) {
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)
	sim.state.Stability = 30

	sim.Tick(0.1)

	if st := sim.State(); st.Progress != 0 {
		t.Errorf("progress = %v, want 0 (stability below floor)", st.Progress)
	}
}

func TestTickStageTransition(t *testing.T) {
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)
	sim.state.Progress = 98

	transitioned := sim.Tick(1.0)

	if !transitioned {
		t.Fatal("expected a stage transition")
	}
	st := sim.State()
	if st.Stage != StageRNA {
		t.Errorf("stage = %v, want rna", st.Stage)
	}
	if st.Progress != 0 {
		t.Errorf("progress = %v, want 0 after transition", st.Progress)
	}
	if st.Stability != 50 {
		t.Errorf("stability = %v, want 50 after transition", st.Stability)
	}
}

func TestTickLifeEntryPinsProgress(t *testing.T) {
	// The transition into life pins progress to 100 so the ocean timeline
	// reads exactly complete for the rest of the stage.
	p := &Params{Temperature: 0.3, Energy: 0.2, Turbulence: 0}
	sim := NewSimulator(p)
	sim.state.Stage = StageProtocell
	sim.state.Progress = 99

	if !sim.Tick(1.0) {
		t.Fatal("expected transition into life")
	}

	st := sim.State()
	if st.Stage != StageLife {
		t.Fatalf("stage = %v, want life", st.Stage)
	}
	if st.Progress != 100 {
		t.Errorf("progress = %v, want 100 on life entry", st.Progress)
	}
	if f := OceanTimeline().Factor(st.Stage, st.Progress); math.Abs(f-1.0) > 1e-9 {
		t.Errorf("ocean factor = %v, want 1.0 at life entry", f)
	}
}

func TestTickLifeIsAbsorbing(t *testing.T) {
	p := &Params{Temperature: 0.5, Energy: 0.5, Turbulence: 0}
	sim := NewSimulator(p)
	sim.state.Stage = StageLife
	sim.state.Progress = 100

	for i := 0; i < 10; i++ {
		if sim.Tick(1.0) {
			t.Fatal("life stage must not transition from ticks")
		}
	}

	st := sim.State()
	if st.Stage != StageLife {
		t.Errorf("stage = %v, want life", st.Stage)
	}
	if st.Progress != 100 {
		t.Errorf("progress = %v, want 100 (clamped at terminal)", st.Progress)
	}
}

func TestTickStabilityStaysInRange(t *testing.T) {
	// Arbitrary tick sequences must keep stability in [0,100].
	p := &Params{Temperature: 0.1, Energy: 0.9, Turbulence: 1.0}
	sim := NewSimulator(p)

	for i := 0; i < 2000; i++ {
		if i == 500 {
			p.Temperature = 0.8
			p.Energy = 0.8
			p.Turbulence = 0
		}
		if i == 1200 {
			p.Turbulence = 1.0
			p.Energy = 0.0
		}
		sim.Tick(0.05)

		st := sim.State()
		if st.Stability < 0 || st.Stability > 100 {
			t.Fatalf("tick %d: stability %v out of [0,100]", i, st.Stability)
		}
	}
}

func TestTickStageNeverRegresses(t *testing.T) {
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)
	prev := sim.State().Stage

	for i := 0; i < 10000; i++ {
		transitioned := sim.Tick(0.1)
		st := sim.State()
		if st.Stage < prev {
			t.Fatalf("stage regressed from %v to %v", prev, st.Stage)
		}
		if transitioned {
			// Retune to the new goldilocks zone so the run reaches life.
			if tT, tE, ok := Target(st.Stage); ok {
				p.Temperature = tT
				p.Energy = tE
			}
		}
		prev = st.Stage
	}

	if prev != StageLife {
		t.Errorf("expected run to reach life, stuck at %v", prev)
	}
}

func TestTickBadDeltas(t *testing.T) {
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)
	sim.state.Progress = 10
	sim.state.Stability = 80
	before := sim.State()

	tests := []struct {
		name  string
		delta float64
	}{
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
		{"negative", -1.0},
		{"zero", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if sim.Tick(tt.delta) {
				t.Error("bad delta must not transition")
			}
			if sim.State() != before {
				t.Errorf("state changed on bad delta: %+v", sim.State())
			}
		})
	}
}

func TestTickHugeDeltaCapped(t *testing.T) {
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)

	sim.Tick(1e9)

	// Capped at maxTickDelta, so one tick cannot complete a stage.
	st := sim.State()
	if st.Stage != StageAminoAcids {
		t.Errorf("stage = %v, want amino_acids (one tick must not jump a stage)", st.Stage)
	}
	if st.Progress > progressRate*maxTickDelta+1e-9 {
		t.Errorf("progress = %v, want <= %v (delta cap)", st.Progress, progressRate*maxTickDelta)
	}
}

func TestTickOneSecondDeltaNotCapped(t *testing.T) {
	// Whole-second deltas are legitimate tick sizes and must pass through
	// uncapped: progress moves by the full 5 percent.
	p := &Params{Temperature: 0.8, Energy: 0.8, Turbulence: 0}
	sim := NewSimulator(p)

	sim.Tick(1.0)

	if st := sim.State(); math.Abs(st.Progress-5.0) > 1e-9 {
		t.Errorf("progress = %v, want 5.0 (1s delta must not be capped)", st.Progress)
	}
}

package evolution

import "math"

// Tuning constants for the ocean-phase feedback loop.
const (
	// Stability drifts up when conditions are near-ideal, down otherwise.
	stabilityGain    = 5.0  // per second, conditionScore above the gate
	stabilityLoss    = 5.0  // per second, conditionScore at or below the gate
	stabilityGate    = 0.8  // conditionScore needed for stability to recover
	turbulenceDrain  = 2.0  // per second at full turbulence, applied always
	progressRate     = 5.0  // percent per second while both gates hold
	progressGate     = 0.7  // conditionScore needed for progress
	stabilityFloor   = 50.0 // progress gate threshold and post-transition reset
	initialStability = 100.0

	// A stalled clock must not jump a stage in one tick. Well above any
	// real frame delta; a stage still needs 20s of ideal conditions.
	maxTickDelta = 5.0
)

// target is the goldilocks zone for one ocean-phase stage.
type target struct {
	temperature float64
	energy      float64
}

// Goldilocks targets. Amino acid synthesis wants volcanic heat and lightning
// energy; RNA wants moderate cycling conditions; protocells want a cooled,
// calm ocean. Life has no target: it is terminal within this machine.
var targets = map[Stage]target{
	StageAminoAcids: {0.8, 0.8},
	StageRNA:        {0.5, 0.5},
	StageProtocell:  {0.3, 0.2},
}

// Target returns the goldilocks target for a stage. ok is false for stages
// with no further parameter-driven advancement.
func Target(stage Stage) (temperature, energy float64, ok bool) {
	t, ok := targets[stage]
	return t.temperature, t.energy, ok
}

// Score rates how close p sits to a stage's goldilocks zone. A perfect match
// yields 1.0. Stages without a target score 0.
func Score(p Params, stage Stage) float64 {
	t, ok := targets[stage]
	if !ok {
		return 0
	}
	return 1 - (math.Abs(p.Temperature-t.temperature)+math.Abs(p.Energy-t.energy))/2
}

// State is a read-only snapshot of the simulation.
type State struct {
	Stage     Stage
	Progress  float64 // [0,100] completion of the current stage
	Stability float64 // [0,100]; must exceed stabilityFloor for progress
}

// Simulator advances stability and progress from the current parameter
// settings and owns the ocean-phase stage machine
// (amino acids → RNA → protocell → life).
type Simulator struct {
	params *Params
	state  State
}

// NewSimulator creates a simulator reading from params, starting at the
// amino acid stage with full stability.
func NewSimulator(params *Params) *Simulator {
	return &Simulator{
		params: params,
		state: State{
			Stage:     StageAminoAcids,
			Progress:  0,
			Stability: initialStability,
		},
	}
}

// Params returns the parameter store the simulator reads from.
func (s *Simulator) Params() *Params {
	return s.params
}

// State returns a snapshot of the current simulation state.
func (s *Simulator) State() State {
	return s.state
}

// MacroPhase returns the macro-phase of the current stage, for the audio
// layer's soundscape selection.
func (s *Simulator) MacroPhase() Phase {
	return s.state.Stage.Phase()
}

// Tick advances the simulation by delta seconds and reports whether a stage
// transition occurred. Non-finite or non-positive deltas skip the tick;
// oversized deltas are capped at maxTickDelta.
func (s *Simulator) Tick(delta float64) bool {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		return false
	}
	if delta > maxTickDelta {
		delta = maxTickDelta
	}

	st := &s.state
	if _, ok := targets[st.Stage]; !ok {
		// Terminal within this machine; progress is pinned at 100 on entry
		// and never accumulates further.
		return false
	}

	score := Score(*s.params, st.Stage)

	drift := -stabilityLoss
	if score > stabilityGate {
		drift = stabilityGain
	}
	// Turbulence destabilizes regardless of how good conditions are.
	st.Stability = clamp(st.Stability+drift*delta-s.params.Turbulence*turbulenceDrain*delta, 0, 100)

	if st.Stability > stabilityFloor && score > progressGate {
		st.Progress += progressRate * delta
	}

	if st.Progress >= 100 {
		st.Stage++
		st.Progress = 0
		st.Stability = stabilityFloor
		if _, ok := targets[st.Stage]; !ok {
			// Entering the terminal life stage: pin progress to 100 so the
			// ocean timeline reads exactly complete.
			st.Progress = 100
		}
		return true
	}
	return false
}

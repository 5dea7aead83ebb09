package evolution

// Gate drives the land-phase stages (Pangea, Extinction) from discrete
// narrative events. It is entirely decoupled from the parameter feedback
// loop: progress is set, not accumulated, and only ever moves forward.
type Gate struct {
	sim *Simulator
}

// NewGate creates a gate mutating the same state as sim.
func NewGate(sim *Simulator) *Gate {
	return &Gate{sim: sim}
}

// Advance sets land-phase progress to target (clamped to [0,100]). The first
// advance moves the stage from Life to Pangea. Targets below the current
// progress are ignored, and calls before the ocean phase completes are no-ops.
func (g *Gate) Advance(target float64) bool {
	st := &g.sim.state
	if st.Stage < StageLife || st.Stage == StageExtinction {
		return false
	}
	if st.Stage == StageLife {
		st.Stage = StagePangea
		st.Progress = 0
		st.Stability = stabilityFloor
	}
	target = clamp(target, 0, 100)
	if target <= st.Progress {
		return false
	}
	st.Progress = target
	return true
}

// TriggerExtinction moves to the terminal Extinction stage with progress 0.
// It is a no-op before the land phase has been entered.
func (g *Gate) TriggerExtinction() bool {
	st := &g.sim.state
	if st.Stage != StagePangea {
		return false
	}
	st.Stage = StageExtinction
	st.Progress = 0
	st.Stability = stabilityFloor
	return true
}

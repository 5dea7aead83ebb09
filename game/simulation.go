package game

import (
	"log/slog"

	"github.com/pthm-cable/genesis/environment"
	"github.com/pthm-cable/genesis/evolution"
	"github.com/pthm-cable/genesis/telemetry"
)

// Update runs input handling plus one or more simulation steps.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
	g.perf.RecordFrame()
}

// UpdateHeadless runs simulation steps without input handling or drawing.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// Step advances the whole simulation by one fixed tick. Safe to call from
// headless drivers.
func (g *Game) Step() {
	dt := g.cfg.Simulation.DT
	g.perf.StartTick()

	// 1. Evolution core. Stage changes can come from the simulator, from
	// the quiz driving the gate between steps, or from the extinction
	// trigger; comparing against the last seen stage catches all three.
	g.perf.StartPhase(telemetry.PhaseSimulation)
	g.sim.Tick(dt)
	g.updateExtinctionTimer(dt)
	state := g.sim.State()
	transitioned := state.Stage != g.lastStage
	if transitioned {
		g.lastStage = state.Stage
		g.onTransition(state)
	}

	// 2. Environment blend
	g.perf.StartPhase(telemetry.PhaseBlend)
	g.lastFactor = g.evolutionFactor(state)
	g.visuals = g.smoother.Update(g.blendTarget(), dt)

	// 3. Population reconcile on transitions, swarm every tick
	g.perf.StartPhase(telemetry.PhasePopulation)
	if transitioned {
		g.reconcilePopulation()
	}

	g.perf.StartPhase(telemetry.PhaseSwarm)
	g.swarm.Update(dt, g.visuals.AnimationSpeed)
	if g.particles != nil {
		g.particles.Update(g.visuals.ParticleCount, float32(dt), float32(g.visuals.AnimationSpeed))
	}

	// 4. Telemetry
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordScoreSample(evolution.Score(*g.params, state.Stage))
	g.flushTelemetry()

	g.perf.EndTick()
	g.tick++
	g.simTime += dt

	if g.bannerTimer > 0 {
		g.bannerTimer -= dt
	}
}

// onTransition handles a stage change, whichever driver produced it.
func (g *Game) onTransition(state evolution.State) {
	g.collector.RecordTransition()
	g.banner(state.Stage)

	slog.Info("stage transition",
		"stage", state.Stage.String(),
		"tick", g.tick,
		"sim_time", g.simTime,
	)
}

// updateExtinctionTimer counts down from quiz completion to the extinction
// event, leaving a cinematic window between the final answer and the impact.
func (g *Game) updateExtinctionTimer(dt float64) {
	if g.quiz.Done() && !g.extinctionArmed && g.sim.State().Stage == evolution.StagePangea {
		g.extinctionArmed = true
		g.extinctionTimer = g.cfg.Narrative.ExtinctionDelay
		slog.Info("extinction armed", "delay_sec", g.extinctionTimer)
	}

	if !g.extinctionArmed {
		return
	}

	g.extinctionTimer -= dt
	if g.extinctionTimer <= 0 {
		g.extinctionArmed = false
		if g.gate.TriggerExtinction() {
			// Step notices the stage change and handles the transition
			// hooks like any other stage driver.
			slog.Info("extinction triggered", "tick", g.tick)
		}
	}
}

// evolutionFactor maps the current state onto [0,1] within its macro-phase
// timeline.
func (g *Game) evolutionFactor(state evolution.State) float64 {
	if g.sim.MacroPhase() == evolution.PhaseLand {
		return g.land.Factor(state.Stage, state.Progress)
	}
	return g.ocean.Factor(state.Stage, state.Progress)
}

// blendTarget samples the active macro-phase blender at the current factor.
func (g *Game) blendTarget() environment.VisualParams {
	if g.sim.MacroPhase() == evolution.PhaseLand {
		return g.landBlender.At(g.lastFactor)
	}
	return g.oceanBlender.At(g.lastFactor)
}

// banner shows a transient stage announcement.
func (g *Game) banner(stage evolution.Stage) {
	names := map[evolution.Stage]string{
		evolution.StageAminoAcids: "Amino acids drift in a boiling sea",
		evolution.StageRNA:        "Replicators: RNA takes hold",
		evolution.StageProtocell:  "Membranes close: the first protocells",
		evolution.StageLife:       "Life persists",
		evolution.StagePangea:     "The land rises: Pangea",
		evolution.StageExtinction: "Impact. Silence.",
	}
	if text, ok := names[stage]; ok {
		g.bannerText = text
		g.bannerTimer = 4
	}
}

// RunHeadless advances the simulation up to maxTicks or until the target
// stage is reached. Returns the tick count at exit. Used by the tuner and
// long-run validation.
func (g *Game) RunHeadless(maxTicks int32, until evolution.Stage) int32 {
	for g.tick < maxTicks {
		g.Step()
		if g.sim.State().Stage.AtLeast(until) {
			break
		}
	}
	return g.tick
}

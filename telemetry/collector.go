package telemetry

import (
	"math"

	"github.com/pthm-cable/genesis/evolution"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters and samples for the current window
	transitions    int
	correctAnswers int
	wrongAnswers   int
	scoreSamples   []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick (used for tick-to-time conversion).
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// Rounded, not truncated: a 1s window at dt=1/60 must be 60 ticks,
	// not 59, despite the float32 step being slightly above 1/60 exactly.
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		scoreSamples:        make([]float64, 0, ticksPerWindow),
	}
}

// RecordTransition records a stage transition.
func (c *Collector) RecordTransition() {
	c.transitions++
}

// RecordAnswer records a quiz answer outcome.
func (c *Collector) RecordAnswer(correct bool) {
	if correct {
		c.correctAnswers++
	} else {
		c.wrongAnswers++
	}
}

// RecordScoreSample records the tick's condition score for percentile
// calculation at flush time.
func (c *Collector) RecordScoreSample(score float64) {
	c.scoreSamples = append(c.scoreSamples, score)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Snapshot carries the instantaneous values sampled at window end.
type Snapshot struct {
	State           evolution.State
	Params          evolution.Params
	EvolutionFactor float64
	SpeciesActive   int
	CreatureCount   int
	ParticleCount   int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, snap Snapshot) WindowStats {
	mean, p10, p50, p90 := ComputeScoreStats(c.scoreSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Stage:     snap.State.Stage.String(),
		Progress:  snap.State.Progress,
		Stability: snap.State.Stability,

		Temperature: snap.Params.Temperature,
		Energy:      snap.Params.Energy,
		Turbulence:  snap.Params.Turbulence,

		ScoreMean: mean,
		ScoreP10:  p10,
		ScoreP50:  p50,
		ScoreP90:  p90,

		Transitions:    c.transitions,
		CorrectAnswers: c.correctAnswers,
		WrongAnswers:   c.wrongAnswers,

		EvolutionFactor: snap.EvolutionFactor,
		SpeciesActive:   snap.SpeciesActive,
		CreatureCount:   snap.CreatureCount,
		ParticleCount:   snap.ParticleCount,
	}

	// Reset for the next window
	c.windowStartTick = currentTick
	c.transitions = 0
	c.correctAnswers = 0
	c.wrongAnswers = 0
	c.scoreSamples = c.scoreSamples[:0]

	return stats
}

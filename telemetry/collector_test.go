package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/genesis/evolution"
)

func TestCollectorWindowBoundaries(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0) // 60 ticks per window

	if c.windowDurationTicks != 60 {
		t.Fatalf("ticks per window = %d, want 60", c.windowDurationTicks)
	}
	if c.ShouldFlush(59) {
		t.Error("should not flush before the window ends")
	}
	if !c.ShouldFlush(60) {
		t.Error("should flush at the window boundary")
	}
}

func TestCollectorFlushAggregates(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)

	c.RecordTransition()
	c.RecordAnswer(true)
	c.RecordAnswer(false)
	c.RecordAnswer(false)
	for i := 0; i < 10; i++ {
		c.RecordScoreSample(0.8)
	}

	snap := Snapshot{
		State:           evolution.State{Stage: evolution.StageRNA, Progress: 42, Stability: 77},
		Params:          evolution.Params{Temperature: 0.5, Energy: 0.6, Turbulence: 0.1},
		EvolutionFactor: 0.355,
		SpeciesActive:   2,
		CreatureCount:   30,
		ParticleCount:   200,
	}

	stats := c.Flush(60, snap)

	if stats.Stage != "rna" {
		t.Errorf("stage = %q, want rna", stats.Stage)
	}
	if stats.Transitions != 1 {
		t.Errorf("transitions = %d, want 1", stats.Transitions)
	}
	if stats.CorrectAnswers != 1 || stats.WrongAnswers != 2 {
		t.Errorf("answers = %d/%d, want 1/2", stats.CorrectAnswers, stats.WrongAnswers)
	}
	if math.Abs(stats.ScoreMean-0.8) > 1e-9 {
		t.Errorf("score mean = %v, want 0.8", stats.ScoreMean)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 0.001 {
		t.Errorf("sim time = %v, want ~1.0", stats.SimTimeSec)
	}
	if stats.CreatureCount != 30 || stats.SpeciesActive != 2 {
		t.Errorf("population snapshot not carried: %+v", stats)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)
	c.RecordTransition()
	c.RecordScoreSample(1.0)

	c.Flush(60, Snapshot{})
	stats := c.Flush(120, Snapshot{})

	if stats.Transitions != 0 {
		t.Errorf("transitions = %d, want 0 after reset", stats.Transitions)
	}
	if stats.ScoreMean != 0 {
		t.Errorf("score mean = %v, want 0 after reset", stats.ScoreMean)
	}
	if stats.WindowStartTick != 60 {
		t.Errorf("window start = %d, want 60", stats.WindowStartTick)
	}
}

func TestCollectorTinyWindowClamped(t *testing.T) {
	c := NewCollector(0.001, 1.0/60.0) // shorter than one tick

	if !c.ShouldFlush(1) {
		t.Error("window shorter than a tick should flush every tick")
	}
}

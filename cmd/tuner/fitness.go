package main

import (
	"github.com/pthm-cable/genesis/config"
	"github.com/pthm-cable/genesis/evolution"
	"github.com/pthm-cable/genesis/game"
)

// Evaluator scores a parameter vector by how quickly headless runs reach
// the Life stage. Runs that stall are charged the tick cap plus the
// evolutionary distance still remaining, so partial progress still orders
// candidates.
type Evaluator struct {
	cfg      *config.Config
	maxTicks int32
	seeds    []int64
}

// NewEvaluator creates an evaluator over the given seeds.
func NewEvaluator(cfg *config.Config, maxTicks int32, seeds []int64) *Evaluator {
	return &Evaluator{
		cfg:      cfg,
		maxTicks: maxTicks,
		seeds:    seeds,
	}
}

// Evaluate runs one headless simulation per seed and returns the mean cost.
func (e *Evaluator) Evaluate(x []float64) float64 {
	params := clampVector(x)

	var total float64
	for _, seed := range e.seeds {
		total += e.runOnce(params, seed)
	}
	return total / float64(len(e.seeds))
}

// runOnce scores a single simulation run.
func (e *Evaluator) runOnce(params []float64, seed int64) float64 {
	g, err := game.NewGame(e.cfg, game.Options{
		Headless: true,
		Seed:     seed,
	})
	if err != nil {
		return float64(e.maxTicks) * 10
	}
	defer g.Unload()

	p := g.Params()
	p.Set(evolution.ParamTemperature, params[0])
	p.Set(evolution.ParamEnergy, params[1])
	p.Set(evolution.ParamTurbulence, params[2])

	ticks := g.RunHeadless(e.maxTicks, evolution.StageLife)
	state := g.State()

	if state.Stage.AtLeast(evolution.StageLife) {
		return float64(ticks)
	}

	// Didn't make it: cap cost plus remaining stage-progress distance.
	stagesLeft := float64(evolution.StageLife - state.Stage)
	remaining := stagesLeft*100 - state.Progress
	return float64(e.maxTicks) + remaining*float64(e.maxTicks)/400
}

// clampVector clamps a candidate vector into the parameter cube.
func clampVector(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		out[i] = v
	}
	return out
}

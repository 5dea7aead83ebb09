package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Simulation state at window end
	Stage     string  `csv:"stage"`
	Progress  float64 `csv:"progress"`
	Stability float64 `csv:"stability"`

	// Parameter settings at window end
	Temperature float64 `csv:"temperature"`
	Energy      float64 `csv:"energy"`
	Turbulence  float64 `csv:"turbulence"`

	// Condition score distribution over the window
	ScoreMean float64 `csv:"score_mean"`
	ScoreP10  float64 `csv:"score_p10"`
	ScoreP50  float64 `csv:"score_p50"`
	ScoreP90  float64 `csv:"score_p90"`

	// Events during window
	Transitions    int `csv:"transitions"`
	CorrectAnswers int `csv:"correct_answers"`
	WrongAnswers   int `csv:"wrong_answers"`

	// Rendered world at window end
	EvolutionFactor float64 `csv:"evolution_factor"`
	SpeciesActive   int     `csv:"species_active"`
	CreatureCount   int     `csv:"creatures"`
	ParticleCount   int     `csv:"particles"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeScoreStats calculates mean and percentiles from condition score
// samples.
func ComputeScoreStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("stage", s.Stage),
		slog.Float64("progress", s.Progress),
		slog.Float64("stability", s.Stability),
		slog.Float64("score_mean", s.ScoreMean),
		slog.Int("transitions", s.Transitions),
		slog.Int("correct_answers", s.CorrectAnswers),
		slog.Int("wrong_answers", s.WrongAnswers),
		slog.Float64("evolution_factor", s.EvolutionFactor),
		slog.Int("creatures", s.CreatureCount),
	)
}

package game

import (
	"log/slog"

	"github.com/pthm-cable/genesis/telemetry"
)

// flushTelemetry flushes the stats window when due and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	state := g.sim.State()
	particleCount := 0
	if g.particles != nil {
		particleCount = g.particles.Count()
	}

	stats := g.collector.Flush(g.tick, telemetry.Snapshot{
		State:           state,
		Params:          *g.params,
		EvolutionFactor: g.lastFactor,
		SpeciesActive:   len(g.scheduler.Active(state.Stage)),
		CreatureCount:   g.creatureCount,
		ParticleCount:   particleCount,
	})
	perfStats := g.perf.Stats()

	if g.logStats {
		slog.Info("window stats", "stats", stats)
		g.perf.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarks.Check(stats) {
		bm.LogBookmark()
		if g.output != nil {
			if err := g.output.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

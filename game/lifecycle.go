package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/genesis/components"
	"github.com/pthm-cable/genesis/population"
)

const baseCreatureRadius = 6.0

// reconcilePopulation brings the live entity counts up to the scheduler's
// resolved counts for the current stage. Activation is accretive, so this
// only ever spawns; on upgrade the difference is topped up.
func (g *Game) reconcilePopulation() {
	stage := g.sim.State().Stage
	active := g.scheduler.Active(stage)

	for idx, a := range active {
		have := g.spawned[a.ID]
		for have < a.Count {
			g.spawnCreature(uint8(idx), a)
			have++
		}
		if g.spawned[a.ID] != have {
			slog.Info("species population",
				"species", a.ID,
				"count", have,
				"stage", stage.String(),
			)
		}
		g.spawned[a.ID] = have
	}
}

// spawnCreature creates one swarm member around a random home point.
func (g *Game) spawnCreature(speciesIdx uint8, a population.Active) {
	worldW := g.cfg.Derived.WorldW32
	worldH := g.cfg.Derived.WorldH32

	homeX := g.rng.Float32() * worldW
	homeY := g.rng.Float32() * worldH

	// Spawn within the home radius, not on the exact point.
	radius := float32(a.RangeRadius)
	angle := g.rng.Float32() * 2 * math.Pi
	dist := g.rng.Float32() * radius * 0.5
	x := clampWorld(homeX+float32(math.Cos(float64(angle)))*dist, worldW)
	y := clampWorld(homeY+float32(math.Sin(float64(angle)))*dist, worldH)

	speed := float32(a.SpeedScale) * 24
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{}
	cr := components.Creature{
		SpeciesIdx:  speciesIdx,
		Seed:        g.rng.Float32() * 1000,
		HomeX:       homeX,
		HomeY:       homeY,
		RangeRadius: radius,
		Size:        float32(a.SizeScale) * baseCreatureRadius,
		Speed:       speed,
		Heading:     g.rng.Float32()*2*math.Pi - math.Pi,
		Rooted:      speed == 0,
	}

	g.creatureMap.NewEntity(&pos, &vel, &cr)
	g.creatureCount++
}

func clampWorld(v, max float32) float32 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

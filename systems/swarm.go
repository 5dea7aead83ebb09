// Package systems contains the ECS systems moving rendered swarm members.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/genesis/components"
)

// Bounds represents the simulation world bounds.
type Bounds struct {
	Width, Height float32
}

// Wander tuning.
const (
	wanderNoiseFreq = 0.15 // noise field time frequency
	wanderTurnRate  = 2.5  // max radians per second toward the noise heading
	homePullGain    = 1.8  // heading bias strength when outside the home radius
)

// SwarmSystem steers creatures with noise-driven wander inside their
// species' home radius. The global speed factor comes from the environment
// blender's animation-speed channel, so swarms slow down or panic with the
// timeline.
type SwarmSystem struct {
	filter ecs.Filter3[components.Position, components.Velocity, components.Creature]
	noise  opensimplex.Noise
	bounds Bounds
	time   float64
}

// NewSwarmSystem creates a swarm system over the given world bounds.
func NewSwarmSystem(w *ecs.World, bounds Bounds, seed int64) *SwarmSystem {
	return &SwarmSystem{
		filter: *ecs.NewFilter3[components.Position, components.Velocity, components.Creature](w),
		noise:  opensimplex.NewNormalized(seed),
		bounds: bounds,
	}
}

// Update advances all swarm members by delta seconds, with speeds scaled by
// speedFactor.
func (s *SwarmSystem) Update(delta float64, speedFactor float64) {
	if delta <= 0 {
		return
	}
	s.time += delta

	dt := float32(delta)
	factor := float32(speedFactor)

	query := s.filter.Query()
	for query.Next() {
		pos, vel, cr := query.Get()
		if cr.Rooted {
			vel.X, vel.Y = 0, 0
			continue
		}

		// Sample a target heading from the noise field. Each creature reads
		// its own slice of the field via its seed.
		n := s.noise.Eval2(s.time*wanderNoiseFreq, float64(cr.Seed)*17.31)
		targetHeading := float32(n * 2 * math.Pi)

		// Outside the home radius the heading is biased back toward home.
		dx := cr.HomeX - pos.X
		dy := cr.HomeY - pos.Y
		dist := float32(math.Hypot(float64(dx), float64(dy)))
		if cr.RangeRadius > 0 && dist > cr.RangeRadius {
			homeHeading := float32(math.Atan2(float64(dy), float64(dx)))
			overshoot := (dist - cr.RangeRadius) / cr.RangeRadius
			if overshoot > 1 {
				overshoot = 1
			}
			targetHeading = blendAngle(targetHeading, homeHeading, overshoot*homePullGain)
		}

		// Turn toward the target heading at a bounded rate.
		diff := normalizeAngle(targetHeading - cr.Heading)
		maxTurn := wanderTurnRate * dt * factor
		if diff > maxTurn {
			diff = maxTurn
		} else if diff < -maxTurn {
			diff = -maxTurn
		}
		cr.Heading = normalizeAngle(cr.Heading + diff)

		speed := cr.Speed * factor
		vel.X = float32(math.Cos(float64(cr.Heading))) * speed
		vel.Y = float32(math.Sin(float64(cr.Heading))) * speed

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		// Keep everything inside the world.
		pos.X = clampf(pos.X, 0, s.bounds.Width)
		pos.Y = clampf(pos.Y, 0, s.bounds.Height)
	}
}

// blendAngle mixes two headings by weight w in [0,1] along the short arc.
func blendAngle(a, b, w float32) float32 {
	if w <= 0 {
		return a
	}
	if w > 1 {
		w = 1
	}
	diff := normalizeAngle(b - a)
	return normalizeAngle(a + diff*w)
}

// normalizeAngle wraps angle to [-pi, pi].
func normalizeAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

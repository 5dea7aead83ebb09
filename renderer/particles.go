package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/genesis/camera"
	"github.com/pthm-cable/genesis/environment"
)

// ambientParticle is one drifting mote: ash in the volcanic stages, plankton
// in the open ocean, spores and ashfall on land.
type ambientParticle struct {
	x, y    float32
	vx, vy  float32
	size    float32
	phase   float32 // per-particle sway offset
	life    float32
	maxLife float32
}

// ParticleField manages the ambient particle pool. The target count comes
// from the blended visual parameters each frame; the pool grows and shrinks
// toward it instead of snapping.
type ParticleField struct {
	particles []ambientParticle
	rng       *rand.Rand
	worldW    float32
	worldH    float32
	time      float32
}

// NewParticleField creates a particle field over the world area.
func NewParticleField(worldW, worldH float32, seed int64) *ParticleField {
	return &ParticleField{
		particles: make([]ambientParticle, 0, 512),
		rng:       rand.New(rand.NewSource(seed)),
		worldW:    worldW,
		worldH:    worldH,
	}
}

// Count returns the current live particle count.
func (f *ParticleField) Count() int {
	return len(f.particles)
}

// Update advances the pool toward the target count and moves particles.
// speedFactor scales drift with the timeline's animation speed.
func (f *ParticleField) Update(targetCount int, delta, speedFactor float32) {
	if targetCount < 0 {
		targetCount = 0
	}
	f.time += delta

	// Spawn/retire a few per frame; the smoother already eases the target.
	const churn = 8
	for i := 0; i < churn && len(f.particles) < targetCount; i++ {
		f.particles = append(f.particles, f.spawn())
	}
	if excess := len(f.particles) - targetCount; excess > 0 {
		trim := excess
		if trim > churn {
			trim = churn
		}
		f.particles = f.particles[:len(f.particles)-trim]
	}

	for i := range f.particles {
		p := &f.particles[i]

		// Slow sinusoidal sway over the base drift.
		sway := float32(math.Sin(float64(f.time*0.6+p.phase))) * 4
		p.x += (p.vx + sway) * delta * speedFactor
		p.y += p.vy * delta * speedFactor

		p.life -= delta
		if p.life <= 0 || p.x < -10 || p.x > f.worldW+10 || p.y < -10 || p.y > f.worldH+10 {
			*p = f.spawn()
		}
	}
}

// spawn creates a particle at a random world position.
func (f *ParticleField) spawn() ambientParticle {
	maxLife := 4 + f.rng.Float32()*8
	return ambientParticle{
		x:       f.rng.Float32() * f.worldW,
		y:       f.rng.Float32() * f.worldH,
		vx:      (f.rng.Float32() - 0.5) * 14,
		vy:      -4 - f.rng.Float32()*10, // drift upward like motes in water
		size:    0.8 + f.rng.Float32()*2.2,
		phase:   f.rng.Float32() * 2 * math.Pi,
		life:    maxLife,
		maxLife: maxLife,
	}
}

// Draw renders visible particles with the blended color and opacity.
func (f *ParticleField) Draw(cam *camera.Camera, color environment.Color, opacity float64) {
	base := ToRaylib(color, 1)

	for i := range f.particles {
		p := &f.particles[i]
		if !cam.IsVisible(p.x, p.y, p.size) {
			continue
		}

		// Fade in and out over the particle's life.
		lifeRatio := p.life / p.maxLife
		fade := lifeRatio
		if fade > 1-lifeRatio {
			fade = 1 - lifeRatio
		}
		fade = fade*3 + 0.1
		if fade > 1 {
			fade = 1
		}

		c := base
		c.A = uint8(clamp01(float32(opacity)*fade) * 255)

		sx, sy := cam.WorldToScreen(p.x, p.y)
		rl.DrawCircle(int32(sx), int32(sy), p.size*cam.Zoom, c)
	}
}

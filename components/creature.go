// Package components defines the ECS components for rendered swarm members.
package components

// Creature identifies one swarm member and its wander anchor. Members stay
// within RangeRadius of their home point; Seed desynchronizes the noise
// field driving their headings.
type Creature struct {
	SpeciesIdx  uint8   // index into the scheduler's species table
	Seed        float32 // per-individual noise offset
	HomeX       float32
	HomeY       float32
	RangeRadius float32
	Size        float32 // body radius after the species size scale
	Speed       float32 // cruise speed after the species speed scale
	Heading     float32 // radians
	Rooted      bool    // flora: never moves, skips the wander system
}

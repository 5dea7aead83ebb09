package environment

import "math"

// VisualParams is the full bundle of render-facing values for one point on
// the timeline, computed fresh every frame. It has no persisted identity.
type VisualParams struct {
	Fog             Color
	FogNear         float64
	FogFar          float64
	SkyColor        Color
	GroundColor     Color
	SunColor        Color
	SunIntensity    float64
	ParticleColor   Color
	ParticleOpacity float64
	ParticleCount   int
	Headlight       float64
	TerrainTint     Color
	AnimationSpeed  float64
}

// Tracks holds the per-channel gradients a Blender samples from. One Tracks
// value describes one macro-phase look (ocean or land); the two phases get
// separate Blender instances and must not share a t axis.
type Tracks struct {
	Fog             ColorTrack
	FogNear         Track
	FogFar          Track
	Sky             ColorTrack
	Ground          ColorTrack
	Sun             ColorTrack
	SunIntensity    Track
	Particle        ColorTrack
	ParticleOpacity Track
	ParticleCount   Track
	Headlight       Track
	Terrain         ColorTrack
	AnimationSpeed  Track
}

// Blender samples every visual channel at a timeline position.
type Blender struct {
	tracks Tracks
}

// NewBlender creates a blender over the given channel gradients.
func NewBlender(tracks Tracks) *Blender {
	return &Blender{tracks: tracks}
}

// At returns the visual parameter bundle for timeline position t. Callers
// are expected to pass a t already normalized by the factor mapper; values
// outside [0,1] saturate at the track edges.
func (b *Blender) At(t float64) VisualParams {
	tr := &b.tracks
	return VisualParams{
		Fog:             tr.Fog.At(t),
		FogNear:         tr.FogNear.At(t),
		FogFar:          tr.FogFar.At(t),
		SkyColor:        tr.Sky.At(t),
		GroundColor:     tr.Ground.At(t),
		SunColor:        tr.Sun.At(t),
		SunIntensity:    tr.SunIntensity.At(t),
		ParticleColor:   tr.Particle.At(t),
		ParticleOpacity: tr.ParticleOpacity.At(t),
		ParticleCount:   int(math.Floor(tr.ParticleCount.At(t))),
		Headlight:       tr.Headlight.At(t),
		TerrainTint:     tr.Terrain.At(t),
		AnimationSpeed:  tr.AnimationSpeed.At(t),
	}
}

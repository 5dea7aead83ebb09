package environment

// Smoother eases the rendered visual values toward their per-frame targets
// so stage transitions never pop. The smoothed bundle is deliberately
// lagging render state, never authoritative simulation state.
type Smoother struct {
	rate   float64 // approach rate per second
	primed bool

	current       VisualParams
	particleCount float64 // count smoothed as a float, floored on read
}

// NewSmoother creates a smoother with the given approach rate per second.
func NewSmoother(rate float64) *Smoother {
	if rate <= 0 {
		rate = 1
	}
	return &Smoother{rate: rate}
}

// Update moves the smoothed bundle toward target and returns it. The first
// call snaps to the target so startup shows no blend-in artifact.
func (s *Smoother) Update(target VisualParams, delta float64) VisualParams {
	if !s.primed || delta <= 0 {
		if !s.primed {
			s.current = target
			s.particleCount = float64(target.ParticleCount)
			s.primed = true
		}
		return s.current
	}

	k := s.rate * delta
	if k > 1 {
		k = 1
	}

	c := &s.current
	c.Fog = LerpColor(c.Fog, target.Fog, k)
	c.FogNear = Lerp(c.FogNear, target.FogNear, k)
	c.FogFar = Lerp(c.FogFar, target.FogFar, k)
	c.SkyColor = LerpColor(c.SkyColor, target.SkyColor, k)
	c.GroundColor = LerpColor(c.GroundColor, target.GroundColor, k)
	c.SunColor = LerpColor(c.SunColor, target.SunColor, k)
	c.SunIntensity = Lerp(c.SunIntensity, target.SunIntensity, k)
	c.ParticleColor = LerpColor(c.ParticleColor, target.ParticleColor, k)
	c.ParticleOpacity = Lerp(c.ParticleOpacity, target.ParticleOpacity, k)
	c.Headlight = Lerp(c.Headlight, target.Headlight, k)
	c.TerrainTint = LerpColor(c.TerrainTint, target.TerrainTint, k)
	c.AnimationSpeed = Lerp(c.AnimationSpeed, target.AnimationSpeed, k)

	s.particleCount = Lerp(s.particleCount, float64(target.ParticleCount), k)
	c.ParticleCount = int(s.particleCount)

	return s.current
}

// Current returns the last smoothed bundle without advancing it.
func (s *Smoother) Current() VisualParams {
	return s.current
}

package evolution

// Parameter names accepted by Params.Set.
const (
	ParamTemperature = "temperature"
	ParamEnergy      = "energy"
	ParamTurbulence  = "turbulence"
)

// Params holds the three user-controlled environment dials, each in [0,1].
// A single instance is owned by the simulation context and read once per
// tick; input handlers may overwrite fields between ticks (last writer wins).
type Params struct {
	Temperature float64
	Energy      float64
	Turbulence  float64
}

// Set stores a named parameter, clamped to [0,1]. Unknown names are ignored.
func (p *Params) Set(name string, value float64) {
	value = clamp(value, 0, 1)
	switch name {
	case ParamTemperature:
		p.Temperature = value
	case ParamEnergy:
		p.Energy = value
	case ParamTurbulence:
		p.Turbulence = value
	}
}

// Get returns a named parameter, or 0 for unknown names.
func (p *Params) Get(name string) float64 {
	switch name {
	case ParamTemperature:
		return p.Temperature
	case ParamEnergy:
		return p.Energy
	case ParamTurbulence:
		return p.Turbulence
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

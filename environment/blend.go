// Package environment maps a timeline position to the bundle of visual
// values the renderer consumes: fog, sky, sun, particles, terrain tint.
// Everything here is pure; per-frame smoothing lives in Smoother.
package environment

// Color is a linear-RGB triple with components in [0,1].
type Color struct {
	R, G, B float32
}

// Lerp linearly interpolates between a and b. t=0 yields a exactly,
// t=1 yields b exactly.
func Lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpColor interpolates per channel in linear RGB.
func LerpColor(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	f := float32(t)
	return Color{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
	}
}

// Stop pins a scalar value at a position along the blend axis.
type Stop struct {
	T     float64
	Value float64
}

// ColorStop pins a color at a position along the blend axis.
type ColorStop struct {
	T     float64
	Color Color
}

// Track is a piecewise-linear scalar gradient over t in [0,1].
// Stops must be sorted by T ascending.
type Track []Stop

// At samples the track. Positions before the first stop return the first
// value, positions past the last return the last. An exact stop position
// returns that stop's value exactly.
func (tr Track) At(t float64) float64 {
	if len(tr) == 0 {
		return 0
	}
	if t <= tr[0].T {
		return tr[0].Value
	}
	last := len(tr) - 1
	if t >= tr[last].T {
		return tr[last].Value
	}
	for i := 1; i <= last; i++ {
		if t <= tr[i].T {
			span := tr[i].T - tr[i-1].T
			if span <= 0 {
				return tr[i].Value
			}
			return Lerp(tr[i-1].Value, tr[i].Value, (t-tr[i-1].T)/span)
		}
	}
	return tr[last].Value
}

// ColorTrack is a piecewise-linear color gradient over t in [0,1].
type ColorTrack []ColorStop

// At samples the gradient with the same edge behavior as Track.At.
func (tr ColorTrack) At(t float64) Color {
	if len(tr) == 0 {
		return Color{}
	}
	if t <= tr[0].T {
		return tr[0].Color
	}
	last := len(tr) - 1
	if t >= tr[last].T {
		return tr[last].Color
	}
	for i := 1; i <= last; i++ {
		if t <= tr[i].T {
			span := tr[i].T - tr[i-1].T
			if span <= 0 {
				return tr[i].Color
			}
			return LerpColor(tr[i-1].Color, tr[i].Color, (t-tr[i-1].T)/span)
		}
	}
	return tr[last].Color
}

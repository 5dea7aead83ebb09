package environment

import (
	"math"
	"testing"
)

func TestSmootherFirstUpdateSnaps(t *testing.T) {
	s := NewSmoother(2.0)
	target := VisualParams{SunIntensity: 0.8, ParticleCount: 40, Fog: Color{R: 0.3}}

	got := s.Update(target, 1.0/60.0)
	if got != target {
		t.Errorf("first update = %+v, want snap to target", got)
	}
}

func TestSmootherApproachesTarget(t *testing.T) {
	s := NewSmoother(2.0)
	s.Update(VisualParams{}, 1.0/60.0) // prime at zero

	target := VisualParams{SunIntensity: 1.0}
	prev := 0.0
	for i := 0; i < 300; i++ {
		got := s.Update(target, 1.0/60.0)
		if got.SunIntensity < prev {
			t.Fatalf("frame %d: intensity moved away from target (%v -> %v)", i, prev, got.SunIntensity)
		}
		if got.SunIntensity > 1.0 {
			t.Fatalf("frame %d: overshot target: %v", i, got.SunIntensity)
		}
		prev = got.SunIntensity
	}

	if math.Abs(prev-1.0) > 0.01 {
		t.Errorf("after 5 simulated seconds intensity = %v, want ~1.0", prev)
	}
}

func TestSmootherHugeDeltaDoesNotOvershoot(t *testing.T) {
	s := NewSmoother(3.0)
	s.Update(VisualParams{}, 1.0/60.0)

	got := s.Update(VisualParams{SunIntensity: 1.0}, 10.0) // k capped at 1
	if got.SunIntensity != 1.0 {
		t.Errorf("intensity = %v, want exactly 1.0 with capped step", got.SunIntensity)
	}
}

func TestSmootherParticleCountEases(t *testing.T) {
	s := NewSmoother(2.0)
	s.Update(VisualParams{ParticleCount: 0}, 1.0/60.0)

	got := s.Update(VisualParams{ParticleCount: 300}, 1.0/60.0)
	if got.ParticleCount <= 0 || got.ParticleCount >= 300 {
		t.Errorf("ParticleCount = %d, want intermediate value", got.ParticleCount)
	}
}

func TestSmootherZeroDeltaHoldsState(t *testing.T) {
	s := NewSmoother(2.0)
	s.Update(VisualParams{SunIntensity: 0.5}, 1.0/60.0)

	got := s.Update(VisualParams{SunIntensity: 1.0}, 0)
	if got.SunIntensity != 0.5 {
		t.Errorf("intensity = %v, want held at 0.5 on zero delta", got.SunIntensity)
	}
}

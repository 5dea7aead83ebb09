package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/genesis/environment"
)

// LightState holds the sun position in normalized screen coordinates.
type LightState struct {
	PosX, PosY float32 // (0-1), e.g. top-right = {0.75, 0.12}
}

// SunRenderer renders the sun glow and a broad radial light wash whose
// color and intensity come from the environment blender.
type SunRenderer struct {
	width  float32
	height float32
}

// NewSunRenderer creates a new sun renderer.
func NewSunRenderer(width, height int32) *SunRenderer {
	return &SunRenderer{
		width:  float32(width),
		height: float32(height),
	}
}

// Resize updates the cached screen dimensions.
func (r *SunRenderer) Resize(width, height float32) {
	r.width = width
	r.height = height
}

// Draw renders the radial light and sun glow. The headlight value adds a
// viewer-centered wash used in the hazy early stages.
func (r *SunRenderer) Draw(light LightState, v environment.VisualParams) {
	sunX := light.PosX * r.width
	sunY := light.PosY * r.height
	maxDist := float32(math.Sqrt(float64(r.width*r.width + r.height*r.height)))

	intensity := float32(v.SunIntensity)

	if light.PosX >= -0.1 && light.PosX <= 1.1 {
		r.drawRadialLight(sunX, sunY, maxDist, intensity, v.SunColor)
	}

	if light.PosX >= 0 && light.PosX <= 1.0 && light.PosY >= -0.1 && light.PosY <= 1.0 {
		r.drawSunGlow(sunX, sunY, intensity, v.SunColor)
	}

	if v.Headlight > 0.01 {
		r.drawHeadlight(float32(v.Headlight))
	}
}

// drawRadialLight draws a subtle radial gradient from the light source.
func (r *SunRenderer) drawRadialLight(x, y, maxRadius, intensity float32, c environment.Color) {
	steps := 12
	for i := steps; i >= 0; i-- {
		t := float32(i) / float32(steps)
		radius := maxRadius * t * 0.4

		// Fast falloff - light concentrated near source
		falloff := float32(math.Pow(float64(1-t), 4.0))
		alpha := falloff * 0.015 * intensity * 255

		if alpha < 1 {
			continue
		}

		color := ToRaylib(c, 1)
		color.A = uint8(alpha)
		rl.DrawCircle(int32(x), int32(y), radius, color)
	}
}

// drawSunGlow draws the bright core of the sun.
func (r *SunRenderer) drawSunGlow(x, y, intensity float32, c environment.Color) {
	core := ToRaylib(c, 1)

	for i := 5; i >= 1; i-- {
		radius := float32(i) * 14
		alpha := intensity * 40 / float32(i)
		if alpha > 255 {
			alpha = 255
		}
		glow := core
		glow.A = uint8(alpha)
		rl.DrawCircle(int32(x), int32(y), radius, glow)
	}

	core.A = uint8(clamp01(intensity) * 230)
	rl.DrawCircle(int32(x), int32(y), 12, core)
}

// drawHeadlight draws a viewer-centered light wash for the dense-fog stages.
func (r *SunRenderer) drawHeadlight(strength float32) {
	cx := r.width / 2
	cy := r.height / 2

	steps := 8
	for i := steps; i >= 1; i-- {
		t := float32(i) / float32(steps)
		radius := r.height * 0.6 * t
		alpha := (1 - t) * strength * 30
		if alpha < 1 {
			continue
		}
		color := rl.Color{R: 255, G: 240, B: 220, A: uint8(alpha)}
		rl.DrawCircle(int32(cx), int32(cy), radius, color)
	}
}

// Package renderer contains the raylib-backed environment draws. Everything
// here consumes the blended visual parameters; no simulation state leaks in.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/genesis/environment"
)

// BackgroundRenderer renders the atmosphere gradient and fog as a
// fullscreen shader pass.
type BackgroundRenderer struct {
	shader         rl.Shader
	timeLoc        int32
	resolutionLoc  int32
	skyColorLoc    int32
	groundColorLoc int32
	fogColorLoc    int32
	fogNearLoc     int32
	fogFarLoc      int32

	screenW, screenH float32
	initialized      bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: float32(screenW),
		screenH: float32(screenH),
	}
}

// Init initializes the renderer (must be called after the raylib window is
// created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	b.shader = rl.LoadShader("", "shaders/background.fs")
	b.timeLoc = rl.GetShaderLocation(b.shader, "time")
	b.resolutionLoc = rl.GetShaderLocation(b.shader, "resolution")
	b.skyColorLoc = rl.GetShaderLocation(b.shader, "skyColor")
	b.groundColorLoc = rl.GetShaderLocation(b.shader, "groundColor")
	b.fogColorLoc = rl.GetShaderLocation(b.shader, "fogColor")
	b.fogNearLoc = rl.GetShaderLocation(b.shader, "fogNear")
	b.fogFarLoc = rl.GetShaderLocation(b.shader, "fogFar")

	resolution := []float32{b.screenW, b.screenH}
	rl.SetShaderValue(b.shader, b.resolutionLoc, resolution, rl.ShaderUniformVec2)

	b.initialized = true
}

// Resize updates the cached screen dimensions.
func (b *BackgroundRenderer) Resize(screenW, screenH float32) {
	b.screenW = screenW
	b.screenH = screenH
	if b.initialized {
		resolution := []float32{screenW, screenH}
		rl.SetShaderValue(b.shader, b.resolutionLoc, resolution, rl.ShaderUniformVec2)
	}
}

// Draw renders the background using the current visual parameters.
func (b *BackgroundRenderer) Draw(time float32, v environment.VisualParams) {
	if !b.initialized {
		b.Init()
	}

	rl.BeginShaderMode(b.shader)

	rl.SetShaderValue(b.shader, b.timeLoc, []float32{time}, rl.ShaderUniformFloat)
	rl.SetShaderValue(b.shader, b.skyColorLoc, colorVec(v.SkyColor), rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.groundColorLoc, colorVec(v.GroundColor), rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.fogColorLoc, colorVec(v.Fog), rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.fogNearLoc, []float32{float32(v.FogNear)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(b.shader, b.fogFarLoc, []float32{float32(v.FogFar)}, rl.ShaderUniformFloat)

	// Fullscreen quad
	rl.DrawRectangle(0, 0, int32(b.screenW), int32(b.screenH), rl.White)

	rl.EndShaderMode()
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadShader(b.shader)
		b.initialized = false
	}
}

// colorVec converts a blend color to a shader vec3.
func colorVec(c environment.Color) []float32 {
	return []float32{c.R, c.G, c.B}
}

// ToRaylib converts a blend color and opacity to a raylib color.
func ToRaylib(c environment.Color, alpha float64) rl.Color {
	return rl.Color{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(float32(alpha)) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

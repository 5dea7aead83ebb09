package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/genesis/camera"
	"github.com/pthm-cable/genesis/environment"
)

const (
	terrainColumnWidth = 8.0
	terrainBaseHeight  = 0.18 // fraction of world height
	terrainRidgeHeight = 0.14
)

// TerrainRenderer draws the seabed / land ridge along the bottom of the
// world. Heights are sampled once from layered noise; only the tint changes
// as the timeline advances.
type TerrainRenderer struct {
	heights []float32
	worldW  float32
	worldH  float32
}

// NewTerrainRenderer precomputes the ridge profile for the world.
func NewTerrainRenderer(worldW, worldH float32, seed int64) *TerrainRenderer {
	noise := opensimplex.NewNormalized(seed)

	columns := int(worldW/terrainColumnWidth) + 2
	heights := make([]float32, columns)
	for i := range heights {
		x := float64(i) * terrainColumnWidth
		// Two octaves: broad swells plus finer ridging.
		h := noise.Eval2(x*0.004, 0)*0.7 + noise.Eval2(x*0.02, 31.7)*0.3
		heights[i] = worldH * (terrainBaseHeight + terrainRidgeHeight*float32(h))
	}

	return &TerrainRenderer{
		heights: heights,
		worldW:  worldW,
		worldH:  worldH,
	}
}

// HeightAt returns the terrain height above the world floor at wx.
func (r *TerrainRenderer) HeightAt(wx float32) float32 {
	i := int(wx / terrainColumnWidth)
	if i < 0 {
		i = 0
	}
	if i >= len(r.heights) {
		i = len(r.heights) - 1
	}
	return r.heights[i]
}

// Draw renders the ridge as filled columns tinted by the timeline.
func (r *TerrainRenderer) Draw(cam *camera.Camera, tint environment.Color) {
	fill := ToRaylib(tint, 1)
	// Slightly darker edge line on top of the ridge.
	edge := rl.Color{
		R: uint8(float32(fill.R) * 0.7),
		G: uint8(float32(fill.G) * 0.7),
		B: uint8(float32(fill.B) * 0.7),
		A: 255,
	}

	floorY := r.worldH
	for i, h := range r.heights {
		wx := float32(i) * terrainColumnWidth
		top := floorY - h
		if !cam.IsVisible(wx, top+h/2, h) {
			continue
		}

		sx, sy := cam.WorldToScreen(wx, top)
		_, sBottom := cam.WorldToScreen(wx, floorY)
		w := terrainColumnWidth*cam.Zoom + 1

		rl.DrawRectangle(int32(sx), int32(sy), int32(w), int32(sBottom-sy), fill)
		rl.DrawRectangle(int32(sx), int32(sy), int32(w), int32(2*cam.Zoom+1), edge)
	}
}

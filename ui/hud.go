package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title           string
	StageName       string
	Progress        float32 // [0, 100]
	Stability       float32 // [0, 100]
	ConditionScore  float32 // [0, 1]
	EvolutionFactor float32 // [0, 1]
	CreatureCount   int
	SpeciesCount    int
	ParticleCount   int
	Tick            int32
	Speed           int
	FPS             int32
	Paused          bool
	ScreenWidth     int32
	ScreenHeight    int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	padding := r.Theme.Padding

	width := int32(300)
	height := r.Theme.LineHeight*8 + padding*3
	r.DrawPanel(10, 10, width, height)

	x := int32(10) + padding
	y := int32(10) + padding
	innerWidth := width - padding*2

	rl.DrawText(data.Title, x, y, 20, rl.White)
	y += 26

	y = r.DrawLabelValue(x, y, "Stage", data.StageName)
	y = r.DrawThresholdBar(x, y, "Progress", data.Progress, 100, innerWidth)
	y = r.DrawThresholdBar(x, y, "Stability", data.Stability, 100, innerWidth)
	y = r.DrawBar(x, y, "Conditions", data.ConditionScore, innerWidth)
	y = r.DrawBar(x, y, "Timeline", data.EvolutionFactor, innerWidth)

	rl.DrawText(
		fmt.Sprintf("Creatures: %d | Species: %d | Motes: %d", data.CreatureCount, data.SpeciesCount, data.ParticleCount),
		x, y, r.Theme.FontSize, r.Theme.LabelColor,
	)
	y += r.Theme.LineHeight

	status := fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS)
	if data.Paused {
		status += " | PAUSED"
	}
	rl.DrawText(status, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DrawBanner centers a transient message near the top of the screen. Used
// for stage transitions and the extinction countdown.
func (h *HUD) DrawBanner(screenWidth int32, text string, alpha float32) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	fontSize := int32(28)
	textWidth := rl.MeasureText(text, fontSize)
	c := rl.White
	c.A = uint8(alpha * 255)
	rl.DrawText(text, screenWidth/2-textWidth/2, 60, fontSize, c)
}

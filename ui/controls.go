package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/genesis/evolution"
)

// ControlsPanel renders the environment parameter sliders. Slider edits are
// routed through Params.Set so the same clamping applies as any other input
// path.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and writes any slider changes back into params.
// Returns the Y position below the panel.
func (c *ControlsPanel) Draw(params *evolution.Params) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	rowHeight := int32(38)

	panelHeight := rowHeight*3 + padding*3 + r.Theme.LineHeight
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + padding
	y := c.y + padding
	sliderWidth := float32(c.width - padding*2 - 50)

	rl.DrawText("Environment", x, y, 16, rl.White)
	y += r.Theme.LineHeight + 4

	y = c.drawSlider(x, y, sliderWidth, "Temperature", evolution.ParamTemperature, params)
	y = c.drawSlider(x, y, sliderWidth, "Energy", evolution.ParamEnergy, params)
	y = c.drawSlider(x, y, sliderWidth, "Turbulence", evolution.ParamTurbulence, params)

	return y + padding
}

// drawSlider draws one labeled slider row bound to a named parameter.
func (c *ControlsPanel) drawSlider(x, y int32, width float32, label, name string, params *evolution.Params) int32 {
	r := c.renderer

	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight

	value := float32(params.Get(name))
	newValue := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: width, Height: 18},
		"", "",
		value, 0, 1,
	)
	rl.DrawText(fmt.Sprintf("%.2f", newValue), x+int32(width)+8, y+2, r.Theme.FontSize, r.Theme.ValueColor)
	if newValue != value {
		params.Set(name, float64(newValue))
	}

	return y + 22
}

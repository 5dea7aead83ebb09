package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input. No-op in headless mode.
func (g *Game) handleInput() {
	if g.headless {
		return
	}

	typing := g.quizPanel != nil && g.quizPanel.Editing()

	if !typing {
		if rl.IsKeyPressed(rl.KeySpace) {
			g.paused = !g.paused
		}

		// Speed control with < > keys (comma and period)
		if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
			g.stepsPerUpdate--
		}
		if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
			g.stepsPerUpdate++
		}

		if rl.IsKeyPressed(rl.KeyC) {
			g.controls.Toggle()
		}
	}

	// Camera pan with right mouse drag.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.cam.Pan(delta.X, delta.Y)
	}

	// Zoom toward the cursor.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		factor := float32(1.1)
		if wheel < 0 {
			factor = 1 / 1.1
		}
		mouse := rl.GetMousePosition()
		g.cam.ZoomAt(factor, mouse.X, mouse.Y)
	}
}

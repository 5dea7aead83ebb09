package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/genesis/evolution"
	"github.com/pthm-cable/genesis/renderer"
	"github.com/pthm-cable/genesis/ui"
)

// Where the sun sits on screen, normalized.
var sunPosition = renderer.LightState{PosX: 0.75, PosY: 0.12}

// Draw renders one frame.
func (g *Game) Draw() {
	v := g.visuals

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw(float32(g.simTime), v)
	g.terrain.Draw(g.cam, v.TerrainTint)
	g.drawCreatures()
	g.particles.Draw(g.cam, v.ParticleColor, v.ParticleOpacity)
	g.sun.Draw(sunPosition, v)

	g.drawUI()

	rl.EndDrawing()
}

// drawCreatures renders swarm members as oriented triangles; rooted flora
// as fan shapes anchored to the terrain.
func (g *Game) drawCreatures() {
	tint := renderer.ToRaylib(g.visuals.TerrainTint, 1)

	query := g.creatureFilter.Query()
	for query.Next() {
		pos, _, cr := query.Get()

		if !g.cam.IsVisible(pos.X, pos.Y, cr.Size*2) {
			continue
		}

		sx, sy := g.cam.WorldToScreen(pos.X, pos.Y)
		size := cr.Size * g.cam.Zoom

		if cr.Rooted {
			drawFlora(sx, sy, size, tint)
			continue
		}

		// Body color keyed off the species index so schools read as groups.
		color := speciesColor(cr.SpeciesIdx)
		drawOrientedTriangle(sx, sy, cr.Heading, size, color)
	}
}

// drawUI renders the HUD, controls and quiz panel.
func (g *Game) drawUI() {
	state := g.sim.State()

	particleCount := 0
	if g.particles != nil {
		particleCount = g.particles.Count()
	}

	g.hud.Draw(ui.HUDData{
		Title:           "Genesis",
		StageName:       stageLabel(state.Stage),
		Progress:        float32(state.Progress),
		Stability:       float32(state.Stability),
		ConditionScore:  float32(evolution.Score(*g.params, state.Stage)),
		EvolutionFactor: float32(g.lastFactor),
		CreatureCount:   g.creatureCount,
		SpeciesCount:    len(g.scheduler.Active(state.Stage)),
		ParticleCount:   particleCount,
		Tick:            g.tick,
		Speed:           g.stepsPerUpdate,
		FPS:             rl.GetFPS(),
		Paused:          g.paused,
		ScreenWidth:     int32(g.cfg.Screen.Width),
		ScreenHeight:    int32(g.cfg.Screen.Height),
	})

	g.controls.Draw(g.params)

	// Quiz appears once the ocean phase is complete.
	if state.Stage.AtLeast(evolution.StageLife) && !g.quiz.Done() {
		g.quizPanel.Update(g.cfg.Derived.DT32)
		attempted, correct := g.quizPanel.Draw(g.quiz, int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height))
		if attempted {
			g.collector.RecordAnswer(correct)
		}
	}

	if g.bannerTimer > 0 {
		alpha := float32(g.bannerTimer)
		g.hud.DrawBanner(int32(g.cfg.Screen.Width), g.bannerText, alpha)
	}

	g.hud.DrawControls(
		int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height),
		"SPACE pause | </> speed | C controls | right-drag pan | wheel zoom",
	)
}

// stageLabel returns a display name for a stage.
func stageLabel(stage evolution.Stage) string {
	switch stage {
	case evolution.StageAminoAcids:
		return "Amino Acids"
	case evolution.StageRNA:
		return "RNA"
	case evolution.StageProtocell:
		return "Protocell"
	case evolution.StageLife:
		return "Life"
	case evolution.StagePangea:
		return "Pangea"
	case evolution.StageExtinction:
		return "Extinction"
	default:
		return "Unknown"
	}
}

// speciesColor returns a distinct body color per species index.
func speciesColor(idx uint8) rl.Color {
	palette := []rl.Color{
		{R: 120, G: 220, B: 180, A: 230},
		{R: 100, G: 180, B: 240, A: 230},
		{R: 230, G: 160, B: 220, A: 230},
		{R: 240, G: 210, B: 120, A: 230},
		{R: 150, G: 240, B: 120, A: 230},
		{R: 240, G: 140, B: 110, A: 230},
		{R: 180, G: 180, B: 240, A: 230},
	}
	return palette[int(idx)%len(palette)]
}

// drawOrientedTriangle draws a triangle pointing in the heading direction.
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	cos := float32(math.Cos(float64(heading)))
	sin := float32(math.Sin(float64(heading)))

	frontX := x + cos*radius*1.5
	frontY := y + sin*radius*1.5

	backAngle := heading + math.Pi*0.8
	backLeftX := x + float32(math.Cos(float64(backAngle)))*radius
	backLeftY := y + float32(math.Sin(float64(backAngle)))*radius

	backAngle = heading - math.Pi*0.8
	backRightX := x + float32(math.Cos(float64(backAngle)))*radius
	backRightY := y + float32(math.Sin(float64(backAngle)))*radius

	v1 := rl.Vector2{X: frontX, Y: frontY}
	v2 := rl.Vector2{X: backLeftX, Y: backLeftY}
	v3 := rl.Vector2{X: backRightX, Y: backRightY}

	// DrawTriangle requires counter-clockwise winding (v1, v3, v2)
	rl.DrawTriangle(v1, v3, v2, color)
}

// drawFlora draws a rooted plant as a small fan of fronds.
func drawFlora(x, y, size float32, tint rl.Color) {
	fronds := 5
	for i := 0; i < fronds; i++ {
		angle := -math.Pi/2 + (float64(i)-float64(fronds-1)/2)*0.35
		tipX := x + float32(math.Cos(angle))*size*2.2
		tipY := y + float32(math.Sin(angle))*size*2.2
		rl.DrawLineEx(rl.Vector2{X: x, Y: y}, rl.Vector2{X: tipX, Y: tipY}, size*0.35, tint)
	}
}

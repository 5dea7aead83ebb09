// Package game wires the simulation core, the environment blend, the
// rendered swarm and the telemetry pipeline into one tick loop.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/genesis/camera"
	"github.com/pthm-cable/genesis/components"
	"github.com/pthm-cable/genesis/config"
	"github.com/pthm-cable/genesis/environment"
	"github.com/pthm-cable/genesis/evolution"
	"github.com/pthm-cable/genesis/narrative"
	"github.com/pthm-cable/genesis/population"
	"github.com/pthm-cable/genesis/renderer"
	"github.com/pthm-cable/genesis/systems"
	"github.com/pthm-cable/genesis/telemetry"
	"github.com/pthm-cable/genesis/ui"
)

// Options configure game construction beyond the YAML config.
type Options struct {
	Headless  bool
	Seed      int64
	LogStats  bool
	OutputDir string
}

// Game holds the complete application state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	// Simulation core
	params *evolution.Params
	sim    *evolution.Simulator
	gate   *evolution.Gate
	quiz   *narrative.Quiz
	ocean  evolution.Timeline
	land   evolution.Timeline

	// Environment blend
	oceanBlender *environment.Blender
	landBlender  *environment.Blender
	smoother     *environment.Smoother
	visuals      environment.VisualParams // smoothed, render-facing

	// Rendered world
	world          *ecs.World
	creatureMap    *ecs.Map3[components.Position, components.Velocity, components.Creature]
	creatureFilter *ecs.Filter3[components.Position, components.Velocity, components.Creature]
	scheduler      *population.Scheduler
	speciesTable   []population.Species
	spawned        map[string]int // live count per species ID
	swarm          *systems.SwarmSystem
	creatureCount  int

	// Rendering (nil in headless mode)
	background *renderer.BackgroundRenderer
	sun        *renderer.SunRenderer
	particles  *renderer.ParticleField
	terrain    *renderer.TerrainRenderer
	cam        *camera.Camera
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	quizPanel  *ui.QuizPanel

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	bookmarks *telemetry.BookmarkDetector
	output    *telemetry.OutputManager
	logStats  bool

	// State
	tick           int32
	simTime        float64
	paused         bool
	headless       bool
	stepsPerUpdate int
	lastFactor     float64
	lastStage      evolution.Stage // transition detection across all stage drivers

	// Extinction countdown, armed when the quiz completes.
	extinctionTimer float64
	extinctionArmed bool
	bannerText      string
	bannerTimer     float64
}

// NewGame creates a game instance from the loaded config.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	world := ecs.NewWorld()

	params := &evolution.Params{}
	sim := evolution.NewSimulator(params)
	gate := evolution.NewGate(sim)

	g := &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		params: params,
		sim:    sim,
		gate:   gate,
		quiz:   narrative.NewQuiz(promptsFromConfig(cfg.Narrative.Prompts), gate),
		ocean:  evolution.OceanTimeline(),
		land:   evolution.LandTimeline(),

		oceanBlender: environment.NewBlender(tracksFromLook(cfg.Environment.Ocean)),
		landBlender:  environment.NewBlender(tracksFromLook(cfg.Environment.Land)),
		smoother:     environment.NewSmoother(cfg.Environment.SmoothingRate),

		world:          world,
		creatureMap:    ecs.NewMap3[components.Position, components.Velocity, components.Creature](world),
		creatureFilter: ecs.NewFilter3[components.Position, components.Velocity, components.Creature](world),
		spawned:        make(map[string]int),

		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT32),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarks: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize),
		logStats:  opts.LogStats,

		headless:       opts.Headless,
		stepsPerUpdate: 1,
	}

	g.speciesTable = speciesFromConfig(cfg.Population.Species)
	g.scheduler = population.NewScheduler(g.speciesTable, cfg.Population.LowPower)
	g.swarm = systems.NewSwarmSystem(world, systems.Bounds{
		Width:  cfg.Derived.WorldW32,
		Height: cfg.Derived.WorldH32,
	}, opts.Seed)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		g.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.background = renderer.NewBackgroundRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.sun = renderer.NewSunRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.particles = renderer.NewParticleField(cfg.Derived.WorldW32, cfg.Derived.WorldH32, opts.Seed+1)
		g.terrain = renderer.NewTerrainRenderer(cfg.Derived.WorldW32, cfg.Derived.WorldH32, opts.Seed+2)
		g.cam = camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.WorldW32, cfg.Derived.WorldH32)
		g.hud = ui.NewHUD()
		g.controls = ui.NewControlsPanel(int32(cfg.Screen.Width)-270, 10, 260)
		g.quizPanel = ui.NewQuizPanel(520)
	}

	// First scheduler pass so stage-zero species are present from tick one.
	g.lastStage = sim.State().Stage
	g.reconcilePopulation()

	// Prime the render-facing visuals so the first frame has no snap.
	g.visuals = g.smoother.Update(g.blendTarget(), 0)

	slog.Info("game created",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"world_w", cfg.Derived.WorldW32,
		"world_h", cfg.Derived.WorldH32,
		"species", len(g.speciesTable),
	)

	return g, nil
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// State exposes the simulation state for external drivers (tuner, tests).
func (g *Game) State() evolution.State {
	return g.sim.State()
}

// Params exposes the simulation parameters for external drivers.
func (g *Game) Params() *evolution.Params {
	return g.params
}

// SetStepsPerUpdate sets the simulation speed multiplier.
func (g *Game) SetStepsPerUpdate(n int) {
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	g.stepsPerUpdate = n
}

// Unload releases all resources.
func (g *Game) Unload() {
	if g.background != nil {
		g.background.Unload()
	}
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}

package game

import (
	"log/slog"

	"github.com/pthm-cable/genesis/config"
	"github.com/pthm-cable/genesis/environment"
	"github.com/pthm-cable/genesis/evolution"
	"github.com/pthm-cable/genesis/narrative"
	"github.com/pthm-cable/genesis/population"
)

// tracksFromLook converts one macro-phase look from the config into the
// blender's track bundle. The config stays plain YAML shapes; all blend
// types live here.
func tracksFromLook(look config.PhaseLookConfig) environment.Tracks {
	return environment.Tracks{
		Fog:             colorTrack(look.Fog),
		FogNear:         scalarTrack(look.FogNear),
		FogFar:          scalarTrack(look.FogFar),
		Sky:             colorTrack(look.Sky),
		Ground:          colorTrack(look.Ground),
		Sun:             colorTrack(look.Sun),
		SunIntensity:    scalarTrack(look.SunIntensity),
		Particle:        colorTrack(look.Particle),
		ParticleOpacity: scalarTrack(look.ParticleOpacity),
		ParticleCount:   scalarTrack(look.ParticleCount),
		Headlight:       scalarTrack(look.Headlight),
		Terrain:         colorTrack(look.Terrain),
		AnimationSpeed:  scalarTrack(look.AnimationSpeed),
	}
}

func scalarTrack(stops []config.StopConfig) environment.Track {
	tr := make(environment.Track, 0, len(stops))
	for _, s := range stops {
		tr = append(tr, environment.Stop{T: s.T, Value: s.Value})
	}
	return tr
}

func colorTrack(stops []config.ColorStopConfig) environment.ColorTrack {
	tr := make(environment.ColorTrack, 0, len(stops))
	for _, s := range stops {
		tr = append(tr, environment.ColorStop{T: s.T, Color: environment.Color{
			R: float32(s.Color[0]),
			G: float32(s.Color[1]),
			B: float32(s.Color[2]),
		}})
	}
	return tr
}

// speciesFromConfig resolves the species table. Entries with unparseable
// stage names keep an invalid MinStage, which the scheduler treats as
// never-reached.
func speciesFromConfig(cfg []config.SpeciesConfig) []population.Species {
	out := make([]population.Species, 0, len(cfg))
	for _, sc := range cfg {
		minStage, ok := evolution.ParseStage(sc.MinStage)
		if !ok {
			slog.Warn("unknown species stage", "species", sc.ID, "stage", sc.MinStage)
			minStage = evolution.Stage(-1)
		}

		sp := population.Species{
			ID:          sc.ID,
			MinStage:    minStage,
			Count:       sc.Count,
			SizeScale:   sc.SizeScale,
			SpeedScale:  sc.SpeedScale,
			RangeRadius: sc.RangeRadius,
		}

		if sc.UpgradeStage != "" && sc.UpgradeCount > 0 {
			upStage, ok := evolution.ParseStage(sc.UpgradeStage)
			if !ok {
				slog.Warn("unknown species upgrade stage", "species", sc.ID, "stage", sc.UpgradeStage)
			} else {
				sp.UpgradeStage = upStage
				sp.UpgradeCount = sc.UpgradeCount
			}
		}

		out = append(out, sp)
	}
	return out
}

// promptsFromConfig resolves the narrative prompt sequence.
func promptsFromConfig(cfg []config.PromptConfig) []narrative.Prompt {
	out := make([]narrative.Prompt, 0, len(cfg))
	for _, pc := range cfg {
		out = append(out, narrative.Prompt{
			Question:       pc.Question,
			Keywords:       pc.Keywords,
			ProgressTarget: pc.ProgressTarget,
		})
	}
	return out
}

// Package population resolves which creature and flora species are active
// at a given evolutionary stage. Activation is stepwise and accretive: a
// species switches on at its minimum stage and never switches off again as
// the timeline advances.
package population

import "github.com/pthm-cable/genesis/evolution"

// Low-power scaling applied uniformly to all counts on constrained hardware.
const (
	lowPowerFactor = 0.5
	lowPowerMin    = 2
)

// Species describes one renderable population.
type Species struct {
	ID       string
	MinStage evolution.Stage // stage at which the species first appears
	Count    int

	// Optional count bump at a later stage. UpgradeCount of 0 means no
	// upgrade is defined.
	UpgradeStage evolution.Stage
	UpgradeCount int

	SizeScale   float64
	SpeedScale  float64
	RangeRadius float64
}

// Active is a species entry resolved for a specific stage.
type Active struct {
	Species
	Count int // resolved after upgrades and capability scaling
}

// Scheduler resolves active species for the current stage.
type Scheduler struct {
	species  []Species
	lowPower bool
}

// NewScheduler creates a scheduler over a fixed species table. lowPower
// halves all counts (floor-bounded) without altering stage thresholds.
func NewScheduler(species []Species, lowPower bool) *Scheduler {
	return &Scheduler{species: species, lowPower: lowPower}
}

// Active returns the populations for stage, in table order. A species whose
// MinStage is invalid is treated as never reached.
func (s *Scheduler) Active(stage evolution.Stage) []Active {
	out := make([]Active, 0, len(s.species))
	for _, sp := range s.species {
		if !stage.AtLeast(sp.MinStage) {
			continue
		}

		count := sp.Count
		if sp.UpgradeCount > 0 && stage.AtLeast(sp.UpgradeStage) && sp.UpgradeCount > count {
			count = sp.UpgradeCount
		}
		if s.lowPower {
			count = scaleDown(count)
		}

		out = append(out, Active{Species: sp, Count: count})
	}
	return out
}

// TotalCount returns the summed resolved count for stage.
func (s *Scheduler) TotalCount(stage evolution.Stage) int {
	total := 0
	for _, a := range s.Active(stage) {
		total += a.Count
	}
	return total
}

func scaleDown(count int) int {
	scaled := int(float64(count) * lowPowerFactor)
	if scaled < lowPowerMin {
		scaled = lowPowerMin
	}
	if scaled > count {
		scaled = count
	}
	return scaled
}

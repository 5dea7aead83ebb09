// Package evolution implements the stage progression model: a forward-only
// state machine advising the renderer where along the abiogenesis-to-extinction
// arc the simulation currently sits. The ocean phase (amino acids through
// first life) is driven by continuous parameter feedback; the land phase
// (Pangea through extinction) is driven by discrete narrative events.
package evolution

import "strings"

// Stage is a phase in the forward-only evolutionary timeline.
// The integer values define the total order; stages never move backward.
type Stage int

const (
	StageAminoAcids Stage = iota
	StageRNA
	StageProtocell
	StageLife
	StagePangea
	StageExtinction

	numStages
)

var stageNames = [numStages]string{
	"amino_acids",
	"rna",
	"protocell",
	"life",
	"pangea",
	"extinction",
}

// Valid reports whether s is one of the defined stages.
func (s Stage) Valid() bool {
	return s >= 0 && s < numStages
}

// String returns the stage's config/telemetry name.
func (s Stage) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stageNames[s]
}

// AtLeast reports whether s has reached threshold in the stage order.
// An invalid threshold is treated as never reached.
func (s Stage) AtLeast(threshold Stage) bool {
	if !s.Valid() || !threshold.Valid() {
		return false
	}
	return s >= threshold
}

// ParseStage resolves a config stage name. The second return is false for
// names that match no stage.
func ParseStage(name string) (Stage, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stageNames {
		if n == name {
			return Stage(i), true
		}
	}
	return 0, false
}

// Phase is the macro-phase of the timeline. It selects which factor timeline
// applies and which ambient soundscape the audio layer plays.
type Phase int

const (
	PhaseOcean Phase = iota
	PhaseLand
)

// Phase returns the macro-phase the stage belongs to.
func (s Stage) Phase() Phase {
	if s.Valid() && s >= StagePangea {
		return PhaseLand
	}
	return PhaseOcean
}

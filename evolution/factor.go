package evolution

// Timeline maps (stage, progress) onto a normalized position t in [0,1]
// along one macro-phase of the evolutionary arc. The ocean and land phases
// are distinct timelines with their own normalization; callers pick the
// timeline matching the active macro-phase and must not mix the two.
type Timeline struct {
	stages []Stage
}

// OceanTimeline spans the four parameter-driven stages. t reaches exactly
// 1.0 only at the life stage with progress 100.
func OceanTimeline() Timeline {
	return Timeline{stages: []Stage{StageAminoAcids, StageRNA, StageProtocell, StageLife}}
}

// LandTimeline spans the two narrative-driven stages.
func LandTimeline() Timeline {
	return Timeline{stages: []Stage{StagePangea, StageExtinction}}
}

// Factor returns the timeline position for a stage and its local progress.
// Stages before the timeline's range map to 0, stages past it to 1, so the
// factor is monotonic non-decreasing along any valid execution trace.
func (tl Timeline) Factor(stage Stage, progress float64) float64 {
	if len(tl.stages) == 0 {
		return 0
	}
	idx := -1
	for i, s := range tl.stages {
		if s == stage {
			idx = i
			break
		}
	}
	if idx < 0 {
		if stage < tl.stages[0] {
			return 0
		}
		return 1
	}
	progress = clamp(progress, 0, 100)
	return (float64(idx) + progress/100) / float64(len(tl.stages))
}

// Len returns the number of stages the timeline spans.
func (tl Timeline) Len() int {
	return len(tl.stages)
}

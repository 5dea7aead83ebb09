package narrative

import (
	"testing"

	"github.com/pthm-cable/genesis/evolution"
)

func testPrompts() []Prompt {
	return []Prompt{
		{Question: "What drifted together to form the supercontinent?",
			Keywords: []string{"plate", "continent"}, ProgressTarget: 33},
		{Question: "What did the first land plants need to leave the water?",
			Keywords: []string{"spore", "cuticle", "root"}, ProgressTarget: 66},
		{Question: "What fell from the sky at the end of this era?",
			Keywords: []string{"meteor", "asteroid", "impact"}, ProgressTarget: 100},
	}
}

func landGate(t *testing.T) (*evolution.Simulator, *evolution.Gate) {
	t.Helper()
	p := &evolution.Params{Temperature: 0.8, Energy: 0.8}
	sim := evolution.NewSimulator(p)
	// Drive the ocean phase to completion so the gate is live.
	for i := 0; i < 20000 && sim.State().Stage != evolution.StageLife; i++ {
		if sim.Tick(0.1) {
			if tT, tE, ok := evolution.Target(sim.State().Stage); ok {
				p.Temperature = tT
				p.Energy = tE
			}
		}
	}
	if sim.State().Stage != evolution.StageLife {
		t.Fatalf("ocean phase did not complete: %+v", sim.State())
	}
	return sim, evolution.NewGate(sim)
}

func TestQuizKeywordMatching(t *testing.T) {
	_, gate := landGate(t)
	q := NewQuiz(testPrompts(), gate)

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact keyword", "plate", true},
		{"keyword in sentence", "the continents collided", true},
		{"case insensitive", "PLATE TECTONICS", true},
		{"wrong answer", "volcanoes", false},
		{"empty answer", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gate := landGate(t)
			q = NewQuiz(testPrompts(), gate)
			if got := q.Answer(tt.answer); got != tt.want {
				t.Errorf("Answer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestQuizSequenceAdvancesGate(t *testing.T) {
	sim, gate := landGate(t)
	q := NewQuiz(testPrompts(), gate)

	if !q.Answer("plate tectonics") {
		t.Fatal("first answer should be accepted")
	}
	st := sim.State()
	if st.Stage != evolution.StagePangea || st.Progress != 33 {
		t.Fatalf("after first answer: %+v, want pangea at 33", st)
	}

	// Wrong answer leaves everything untouched.
	if q.Answer("lava") {
		t.Fatal("wrong answer accepted")
	}
	if got := sim.State().Progress; got != 33 {
		t.Errorf("progress = %v, want 33 after wrong answer", got)
	}

	if !q.Answer("they evolved roots") {
		t.Fatal("second answer should be accepted")
	}
	if !q.Answer("an asteroid impact") {
		t.Fatal("third answer should be accepted")
	}

	if got := sim.State().Progress; got != 100 {
		t.Errorf("progress = %v, want 100 after full quiz", got)
	}
	if !q.Done() {
		t.Error("quiz should be done")
	}

	// Extra answers are rejected once done.
	if q.Answer("plate") {
		t.Error("answers after completion must be rejected")
	}
}

func TestQuizBeforeLandPhase(t *testing.T) {
	// The quiz only ever runs in the land phase, but a correct answer while
	// the ocean machine is still running must not corrupt state.
	p := &evolution.Params{}
	sim := evolution.NewSimulator(p)
	q := NewQuiz(testPrompts(), evolution.NewGate(sim))

	q.Answer("plate")

	if st := sim.State(); st.Stage != evolution.StageAminoAcids {
		t.Errorf("stage = %v, want amino_acids untouched", st.Stage)
	}
}

package telemetry

import "testing"

func window(tick int32, stage string, stability, scoreMean float64) WindowStats {
	return WindowStats{
		WindowEndTick: tick,
		Stage:         stage,
		Stability:     stability,
		ScoreMean:     scoreMean,
	}
}

func hasBookmark(list []Bookmark, typ BookmarkType) bool {
	for _, b := range list {
		if b.Type == typ {
			return true
		}
	}
	return false
}

func TestStageTransitionBookmark(t *testing.T) {
	bd := NewBookmarkDetector(10)

	// First window establishes the baseline, no bookmark.
	if got := bd.Check(window(60, "amino_acids", 80, 0.5)); hasBookmark(got, BookmarkStageTransition) {
		t.Error("first window must not produce a transition bookmark")
	}

	if got := bd.Check(window(120, "amino_acids", 80, 0.5)); hasBookmark(got, BookmarkStageTransition) {
		t.Error("no transition, no bookmark")
	}

	got := bd.Check(window(180, "rna", 50, 0.5))
	if !hasBookmark(got, BookmarkStageTransition) {
		t.Error("expected a stage transition bookmark")
	}
}

func TestStabilityCollapseBookmarkFiresOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(window(60, "rna", 80, 0.5))

	got := bd.Check(window(120, "rna", 10, 0.2))
	if !hasBookmark(got, BookmarkStabilityCollapse) {
		t.Error("expected a collapse bookmark")
	}

	// Still collapsed: no repeat while below the threshold.
	got = bd.Check(window(180, "rna", 5, 0.2))
	if hasBookmark(got, BookmarkStabilityCollapse) {
		t.Error("collapse bookmark must not repeat while collapsed")
	}

	// Recovery then a second collapse fires again.
	bd.Check(window(240, "rna", 70, 0.8))
	got = bd.Check(window(300, "rna", 8, 0.1))
	if !hasBookmark(got, BookmarkStabilityCollapse) {
		t.Error("expected a second collapse bookmark after recovery")
	}
}

func TestGoldilocksStreakBookmark(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 2; i++ {
		if got := bd.Check(window(int32(60*(i+1)), "rna", 90, 0.97)); hasBookmark(got, BookmarkGoldilocksStreak) {
			t.Fatalf("streak bookmark fired after only %d windows", i+1)
		}
	}

	got := bd.Check(window(180, "rna", 90, 0.97))
	if !hasBookmark(got, BookmarkGoldilocksStreak) {
		t.Error("expected a streak bookmark at the third window")
	}

	// A poor window resets the streak.
	bd.Check(window(240, "rna", 90, 0.3))
	got = bd.Check(window(300, "rna", 90, 0.97))
	if hasBookmark(got, BookmarkGoldilocksStreak) {
		t.Error("streak must restart after a reset")
	}
}

func TestExtinctionBookmarkFiresOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(window(60, "pangea", 50, 0))

	got := bd.Check(window(120, "extinction", 50, 0))
	if !hasBookmark(got, BookmarkExtinctionTriggered) {
		t.Error("expected an extinction bookmark")
	}

	got = bd.Check(window(180, "extinction", 50, 0))
	if hasBookmark(got, BookmarkExtinctionTriggered) {
		t.Error("extinction bookmark must fire only once")
	}
}

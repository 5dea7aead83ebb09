package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkStageTransition     BookmarkType = "stage_transition"
	BookmarkStabilityCollapse   BookmarkType = "stability_collapse"
	BookmarkGoldilocksStreak    BookmarkType = "goldilocks_streak"
	BookmarkExtinctionTriggered BookmarkType = "extinction_triggered"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// Detection thresholds.
const (
	collapseThreshold = 15.0 // stability considered collapsed below this
	streakScore       = 0.95 // mean score counting toward a goldilocks streak
	streakWindows     = 3    // consecutive windows needed
)

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	lastStage      string
	wasCollapsed   bool
	streakCount    int
	extinctionSeen bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkStageTransition(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkStabilityCollapse(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkGoldilocksStreak(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Add to history
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}

	return bookmarks
}

func (bd *BookmarkDetector) checkStageTransition(stats WindowStats) *Bookmark {
	defer func() { bd.lastStage = stats.Stage }()

	if bd.lastStage == "" || stats.Stage == bd.lastStage {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkStageTransition,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("stage advanced from %s to %s", bd.lastStage, stats.Stage),
	}
}

func (bd *BookmarkDetector) checkStabilityCollapse(stats WindowStats) *Bookmark {
	collapsed := stats.Stability < collapseThreshold
	defer func() { bd.wasCollapsed = collapsed }()

	if !collapsed || bd.wasCollapsed {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkStabilityCollapse,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("stability collapsed to %.1f", stats.Stability),
	}
}

func (bd *BookmarkDetector) checkGoldilocksStreak(stats WindowStats) *Bookmark {
	if stats.ScoreMean < streakScore {
		bd.streakCount = 0
		return nil
	}
	bd.streakCount++
	if bd.streakCount != streakWindows {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkGoldilocksStreak,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("conditions held near-ideal for %d windows", streakWindows),
	}
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	if bd.extinctionSeen || stats.Stage != "extinction" {
		return nil
	}
	bd.extinctionSeen = true
	return &Bookmark{
		Type:        BookmarkExtinctionTriggered,
		Tick:        stats.WindowEndTick,
		Description: "the extinction event has begun",
	}
}

package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFirstDelivery BookmarkType = "first_delivery"
	BookmarkFullHaul      BookmarkType = "full_haul"
	BookmarkDeliverySpike BookmarkType = "delivery_spike"
	BookmarkFieldCleared  BookmarkType = "field_cleared"
	BookmarkStalled       BookmarkType = "stalled"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Restart     int          `csv:"restart" json:"restart"`
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int32        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"restart", b.Restart,
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable windows in a run.
type BookmarkDetector struct {
	capacity int

	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	delivered    bool // a delivery has been seen
	cleared      bool
	idleWindows  int // consecutive windows without recruits or deliveries
	stallFlagged bool
}

// NewBookmarkDetector creates a detector with the given history size.
// capacity is the herd size that counts as a full haul.
func NewBookmarkDetector(historySize, capacity int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		capacity:    capacity,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	for _, check := range []func(WindowStats) *Bookmark{
		bd.checkFirstDelivery,
		bd.checkFullHaul,
		bd.checkDeliverySpike,
		bd.checkFieldCleared,
		bd.checkStalled,
	} {
		if b := check(stats); b != nil {
			b.Restart = stats.Restart
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFirstDelivery(stats WindowStats) *Bookmark {
	if bd.delivered || stats.Delivered == 0 {
		return nil
	}
	bd.delivered = true
	return &Bookmark{
		Type:        BookmarkFirstDelivery,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("First delivery after %.1fs", stats.SimTimeSec),
	}
}

func (bd *BookmarkDetector) checkFullHaul(stats WindowStats) *Bookmark {
	if bd.capacity < 1 || stats.Delivered < bd.capacity {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkFullHaul,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Delivered %d animals in one window (capacity %d)", stats.Delivered, bd.capacity),
	}
}

func (bd *BookmarkDetector) checkDeliverySpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Delivered
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Delivered) > avg*2.0 && stats.Delivered >= 3 {
		return &Bookmark{
			Type:        BookmarkDeliverySpike,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Delivered %d, %.1fx the average (%.2f)", stats.Delivered, float64(stats.Delivered)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkFieldCleared(stats WindowStats) *Bookmark {
	if bd.cleared || stats.Animals > 0 || stats.Score == 0 {
		return nil
	}
	bd.cleared = true
	return &Bookmark{
		Type:        BookmarkFieldCleared,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Every animal delivered, score %d after %.1fs", stats.Score, stats.SimTimeSec),
	}
}

// checkStalled fires once per idle stretch of historySize windows in which
// animals remain but none were recruited or delivered.
func (bd *BookmarkDetector) checkStalled(stats WindowStats) *Bookmark {
	if stats.Animals == 0 || stats.Recruited > 0 || stats.Delivered > 0 {
		bd.idleWindows = 0
		bd.stallFlagged = false
		return nil
	}

	bd.idleWindows++
	if bd.stallFlagged || bd.idleWindows < bd.historySize {
		return nil
	}
	bd.stallFlagged = true
	return &Bookmark{
		Type:        BookmarkStalled,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("No progress for %d windows with %d animals left", bd.idleWindows, stats.Animals),
	}
}

package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FirstDeliveryOnce(t *testing.T) {
	bd := NewBookmarkDetector(5, 5)

	if got := bd.Check(WindowStats{WindowEndTick: 600, Animals: 7}); hasBookmark(got, BookmarkFirstDelivery) {
		t.Fatal("first_delivery before any delivery")
	}
	if got := bd.Check(WindowStats{WindowEndTick: 1200, Animals: 6, Delivered: 1, Score: 1}); !hasBookmark(got, BookmarkFirstDelivery) {
		t.Error("expected first_delivery bookmark")
	}
	if got := bd.Check(WindowStats{WindowEndTick: 1800, Animals: 5, Delivered: 1, Score: 2}); hasBookmark(got, BookmarkFirstDelivery) {
		t.Error("first_delivery fired twice")
	}
}

func TestBookmarkDetector_FullHaul(t *testing.T) {
	bd := NewBookmarkDetector(5, 5)

	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, Animals: 2, Delivered: 5, Score: 5})
	if !hasBookmark(bookmarks, BookmarkFullHaul) {
		t.Error("expected full_haul bookmark")
	}
}

func TestBookmarkDetector_DeliverySpike(t *testing.T) {
	bd := NewBookmarkDetector(10, 20)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Animals: 50, Delivered: 1})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Animals: 40, Delivered: 4})
	if !hasBookmark(bookmarks, BookmarkDeliverySpike) {
		t.Error("expected delivery_spike bookmark")
	}
}

func TestBookmarkDetector_FieldCleared(t *testing.T) {
	bd := NewBookmarkDetector(5, 5)

	// Empty field with no score is not a clear
	if got := bd.Check(WindowStats{WindowEndTick: 600}); hasBookmark(got, BookmarkFieldCleared) {
		t.Fatal("field_cleared with zero score")
	}
	if got := bd.Check(WindowStats{WindowEndTick: 1200, Score: 7}); !hasBookmark(got, BookmarkFieldCleared) {
		t.Error("expected field_cleared bookmark")
	}
	if got := bd.Check(WindowStats{WindowEndTick: 1800, Score: 7}); hasBookmark(got, BookmarkFieldCleared) {
		t.Error("field_cleared fired twice")
	}
}

func TestBookmarkDetector_StalledOncePerStretch(t *testing.T) {
	bd := NewBookmarkDetector(3, 5)

	var fired int
	for i := 0; i < 6; i++ {
		if hasBookmark(bd.Check(WindowStats{WindowEndTick: int32(i * 600), Animals: 4}), BookmarkStalled) {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("stalled fired %d times over one idle stretch, want 1", fired)
	}

	// Progress resets the stretch
	bd.Check(WindowStats{WindowEndTick: 4200, Animals: 3, Delivered: 1})
	fired = 0
	for i := 0; i < 3; i++ {
		if hasBookmark(bd.Check(WindowStats{WindowEndTick: int32(4800 + i*600), Animals: 3}), BookmarkStalled) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("stalled fired %d times after reset, want 1", fired)
	}
}

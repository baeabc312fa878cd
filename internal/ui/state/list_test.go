package state

import "testing"

func entries(names ...string) []Entry {
	out := make([]Entry, len(names))
	for i, n := range names {
		out[i] = Entry{Index: i, Name: n}
	}
	return out
}

func TestListCursorMovement(t *testing.T) {
	l := NewList(entries("one", "two", "three"))
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if !l.MoveCursorEnd() || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("cursor must not move past the last entry")
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if l.MoveCursorUp() {
		t.Fatalf("cursor must not move above the first entry")
	}
}

func TestListPageMovementClampsToBounds(t *testing.T) {
	l := NewList(entries("a", "b", "c", "d", "e", "f"))
	if !l.MoveCursorPageDown(4) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(4) || l.Cursor != 5 {
		t.Fatalf("expected cursor clamped to 5, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(4) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1 after page up, got %d", l.Cursor)
	}
}

func TestListEmptyCursorStaysZero(t *testing.T) {
	l := NewList(nil)
	if l.MoveCursorDown() || l.MoveCursorUp() || l.MoveCursorEnd() {
		t.Fatalf("movement on an empty list must report no change")
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("empty list must have no current entry")
	}
}

func TestListFilterNarrowsItems(t *testing.T) {
	l := NewList(entries("Photos", "Documents", "Music"))
	l.SetFilter("doc")
	if len(l.Items) != 1 {
		t.Fatalf("expected 1 filtered entry, got %d", len(l.Items))
	}
	if l.Items[0].Name != "Documents" || l.Items[0].Index != 1 {
		t.Fatalf("filtered entry must keep its original index, got %#v", l.Items[0])
	}
	if l.Cursor != 0 {
		t.Fatalf("filtering must reset the cursor, got %d", l.Cursor)
	}
}

func TestListFilterRestoresCursorOnClear(t *testing.T) {
	l := NewList(entries("Photos", "Documents", "Music"))
	l.MoveCursorDown()
	l.MoveCursorDown()
	l.AppendFilter("pho")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0 while filtering, got %d", l.Cursor)
	}
	l.ClearFilter()
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if len(l.Items) != 3 {
		t.Fatalf("expected all entries back, got %d", len(l.Items))
	}
}

func TestListFilterDeleteRune(t *testing.T) {
	l := NewList(entries("Photos", "Documents"))
	l.AppendFilter("docx")
	if len(l.Items) != 0 {
		t.Fatalf("expected no matches for %q, got %d", l.Filter, len(l.Items))
	}
	if !l.DeleteFilterRune() {
		t.Fatalf("expected rune deletion to report a change")
	}
	if l.Filter != "doc" {
		t.Fatalf("expected filter \"doc\", got %q", l.Filter)
	}
	if len(l.Items) != 1 {
		t.Fatalf("expected 1 match after shrinking the filter, got %d", len(l.Items))
	}
	for l.DeleteFilterRune() {
	}
	if l.DeleteFilterRune() {
		t.Fatalf("deleting from an empty filter must report no change")
	}
}

func TestListSetEntriesReappliesFilter(t *testing.T) {
	l := NewList(entries("Photos", "Music"))
	l.SetFilter("mus")
	l.SetEntries(entries("Photos", "Music", "Museums"))
	if len(l.Items) != 2 {
		t.Fatalf("expected filter reapplied over new entries, got %d items", len(l.Items))
	}
}

func TestListEnsureCursorVisibleScrollsViewport(t *testing.T) {
	l := NewList(entries("a", "b", "c", "d", "e", "f", "g"))
	l.Cursor = 5
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected viewport offset 3, got %d", l.ViewportOffset)
	}
	l.Cursor = 0
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected viewport offset 0, got %d", l.ViewportOffset)
	}
}

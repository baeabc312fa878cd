package state

import (
	"errors"
	"fmt"
	"testing"
)

// editorRow mimics a composite editor row: one domain value plus its
// interaction state, together in a single struct.
type editorRow struct {
	value   string
	focused bool
	armed   bool
}

func TestRowsAppendReturnsNewIndex(t *testing.T) {
	var rows Rows[editorRow]
	for i := 0; i < 5; i++ {
		idx := rows.Append(editorRow{value: fmt.Sprintf("v%d", i)})
		if idx != i {
			t.Fatalf("expected index %d, got %d", i, idx)
		}
		if rows.Len() != i+1 {
			t.Fatalf("expected length %d, got %d", i+1, rows.Len())
		}
	}
}

func TestRowsRemoveAtShiftsLaterRows(t *testing.T) {
	var rows Rows[editorRow]
	rows.Append(editorRow{value: "a"})
	rows.Append(editorRow{value: "b", armed: true})
	rows.Append(editorRow{value: "c"})

	if err := rows.RemoveAt(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", rows.Len())
	}
	first, err := rows.At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.value != "b" || !first.armed {
		t.Fatalf("row 0 should be the former row 1 with its state intact, got %#v", first)
	}
}

func TestRowsRemoveAtOutOfRange(t *testing.T) {
	var rows Rows[editorRow]
	rows.Append(editorRow{value: "a"})
	for _, i := range []int{-1, 1, 2} {
		if err := rows.RemoveAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("RemoveAt(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if rows.Len() != 1 {
		t.Fatalf("failed removals must not change the rows, got length %d", rows.Len())
	}
}

func TestRowsUpdateAtTouchesOnlyOneRow(t *testing.T) {
	var rows Rows[editorRow]
	rows.Append(editorRow{value: "a"})
	rows.Append(editorRow{value: "b"})

	err := rows.UpdateAt(1, func(r *editorRow) {
		r.value = "changed"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := Map(&rows, func(r *editorRow) string { return r.value })
	if values[0] != "a" || values[1] != "changed" {
		t.Fatalf("unexpected values %#v", values)
	}
	if err := rows.UpdateAt(5, func(*editorRow) {}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

// TestRowsStayAlignedAcrossOperationSequences exercises the reason rows
// exist: after any mix of appends and removes, every piece of per-item
// state still describes the value it was created with.
func TestRowsStayAlignedAcrossOperationSequences(t *testing.T) {
	var rows Rows[editorRow]
	expect := []string{}

	appendRow := func(v string) {
		rows.Append(editorRow{value: v, focused: true})
		expect = append(expect, v)
	}
	removeRow := func(i int) {
		if err := rows.RemoveAt(i); err != nil {
			t.Fatalf("RemoveAt(%d): %v", i, err)
		}
		expect = append(expect[:i], expect[i+1:]...)
	}

	appendRow("one")
	appendRow("two")
	appendRow("three")
	removeRow(1)
	appendRow("four")
	removeRow(0)
	removeRow(1)
	appendRow("five")
	appendRow("six")
	removeRow(2)

	if rows.Len() != len(expect) {
		t.Fatalf("expected %d rows, got %d", len(expect), rows.Len())
	}
	rows.Each(func(i int, r *editorRow) {
		if r.value != expect[i] {
			t.Fatalf("row %d: expected %q, got %q", i, expect[i], r.value)
		}
		if !r.focused {
			t.Fatalf("row %d lost its interaction state", i)
		}
	})
}

func TestRowsAtPointerMutatesInPlace(t *testing.T) {
	var rows Rows[editorRow]
	rows.Append(editorRow{value: "a"})
	row, err := rows.At(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row.armed = true
	again, _ := rows.At(0)
	if !again.armed {
		t.Fatalf("expected mutation through At pointer to stick")
	}
	if _, err := rows.At(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

// Package state holds the UI-side collection types: the composite-row
// sequence backing repeated editor fields, and the filterable list state
// used by the overview.
package state

import "errors"

// ErrIndexOutOfRange reports an index that does not address a row. UI code
// only produces indices it rendered, so hitting this is a logic error, not
// a user-facing condition.
var ErrIndexOutOfRange = errors.New("row index out of range")

// Rows is an ordered sequence of composite rows. A row bundles one domain
// value together with every piece of per-item interaction state (input
// buffer, picker, button flags) in a single struct, so append and remove
// are one operation on one sequence. Keeping N sibling arrays in lockstep
// by hand is exactly the bug this type exists to make unrepresentable:
// there is nothing to forget to push or pop.
type Rows[R any] struct {
	rows []R
}

// Len reports the number of rows.
func (r *Rows[R]) Len() int {
	return len(r.rows)
}

// Append adds a row at the end and returns its index.
func (r *Rows[R]) Append(row R) int {
	r.rows = append(r.rows, row)
	return len(r.rows) - 1
}

// RemoveAt removes the row at index i, shifting later rows down.
func (r *Rows[R]) RemoveAt(i int) error {
	if i < 0 || i >= len(r.rows) {
		return ErrIndexOutOfRange
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return nil
}

// UpdateAt mutates the row at index i in place.
func (r *Rows[R]) UpdateAt(i int, update func(*R)) error {
	if i < 0 || i >= len(r.rows) {
		return ErrIndexOutOfRange
	}
	update(&r.rows[i])
	return nil
}

// At returns a pointer to the row at index i. The pointer stays valid only
// until the next Append or RemoveAt.
func (r *Rows[R]) At(i int) (*R, error) {
	if i < 0 || i >= len(r.rows) {
		return nil, ErrIndexOutOfRange
	}
	return &r.rows[i], nil
}

// Each visits every row in order.
func (r *Rows[R]) Each(visit func(int, *R)) {
	for i := range r.rows {
		visit(i, &r.rows[i])
	}
}

// Map projects every row into a value slice, in order.
func Map[R, V any](r *Rows[R], project func(*R) V) []V {
	out := make([]V, 0, r.Len())
	r.Each(func(_ int, row *R) {
		out = append(out, project(row))
	})
	return out
}

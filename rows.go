package rowkit

import "iter"

// Rows is an immutable, ordered collection of result tuples in the order
// the adapter returned them.
type Rows struct {
	tuples [][]any
}

// NewRows wraps a result set. The tuples are retained as-is, not copied;
// callers must not mutate them afterwards.
func NewRows(tuples [][]any) *Rows {
	return &Rows{tuples: tuples}
}

// Count returns the number of rows in the result.
func (r *Rows) Count() int {
	return len(r.tuples)
}

// All returns a forward iteration over the rows, wrapping each tuple in a
// Row on demand. Iteration does not consume the result; every call starts a
// fresh, independent pass from the beginning.
func (r *Rows) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, tuple := range r.tuples {
			if !yield(NewRow(tuple)) {
				return
			}
		}
	}
}

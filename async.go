package rowkit

import "context"

// AsyncDB is the deferred twin of SyncDB: the same logical operations, each
// delivering its result through a Future that settles when the adapter's
// future does. No operation fans out; each awaits exactly one adapter
// result. Failures arrive on the future's error side, except that typed
// accessor mismatches on the delivered Row/Rows stay synchronous, since
// extraction happens on already-settled data.
type AsyncDB[R any] struct {
	adapter AsyncAdapter[R]
}

// NewAsyncDB creates an asynchronous facade over adapter.
func NewAsyncDB[R any](adapter AsyncAdapter[R]) (*AsyncDB[R], error) {
	if adapter == nil {
		return nil, ErrAdapterNil
	}
	return &AsyncDB[R]{adapter: adapter}, nil
}

// Query runs statement with args and resolves to the wrapped result tuples.
func (db *AsyncDB[R]) Query(ctx context.Context, statement string, args ...any) *Future[*Rows] {
	return then(db.adapter.Query(ctx, statement, args...), func(tuples [][]any) (*Rows, error) {
		return NewRows(tuples), nil
	})
}

// QueryOne resolves to the first result row, or to nil when the query
// produced no rows. Extra rows are ignored.
func (db *AsyncDB[R]) QueryOne(ctx context.Context, statement string, args ...any) *Future[*Row] {
	return then(db.adapter.Query(ctx, statement, args...), func(tuples [][]any) (*Row, error) {
		if len(tuples) == 0 {
			return nil, nil
		}
		row := NewRow(tuples[0])
		return &row, nil
	})
}

// RequireOne awaits QueryOne and rejects with ErrNoRows when the result is
// absent.
func (db *AsyncDB[R]) RequireOne(ctx context.Context, statement string, args ...any) *Future[*Row] {
	return then(db.QueryOne(ctx, statement, args...), func(row *Row) (*Row, error) {
		if row == nil {
			return nil, ErrNoRows
		}
		return row, nil
	})
}

// Execute forwards statement and args to the adapter's execute operation;
// the returned future settles with the adapter's result unchanged.
func (db *AsyncDB[R]) Execute(ctx context.Context, statement string, args ...any) *Future[R] {
	return db.adapter.Execute(ctx, statement, args...)
}

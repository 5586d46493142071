package rowkit

import "context"

// SyncDB adapts a synchronous adapter into the Row/Rows vocabulary. Every
// operation calls straight through to the adapter on the caller's
// goroutine; adapter errors propagate unchanged.
type SyncDB[R any] struct {
	adapter SyncAdapter[R]
}

// NewSyncDB creates a synchronous facade over adapter.
func NewSyncDB[R any](adapter SyncAdapter[R]) (*SyncDB[R], error) {
	if adapter == nil {
		return nil, ErrAdapterNil
	}
	return &SyncDB[R]{adapter: adapter}, nil
}

// Query runs statement with args and wraps the adapter's result tuples.
func (db *SyncDB[R]) Query(ctx context.Context, statement string, args ...any) (*Rows, error) {
	tuples, err := db.adapter.Query(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	return NewRows(tuples), nil
}

// QueryOne runs statement with args and wraps only the first result row.
// It returns (nil, nil) when the query produced no rows; extra rows are
// ignored, not an error.
func (db *SyncDB[R]) QueryOne(ctx context.Context, statement string, args ...any) (*Row, error) {
	tuples, err := db.adapter.Query(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	if len(tuples) == 0 {
		return nil, nil
	}
	row := NewRow(tuples[0])
	return &row, nil
}

// RequireOne is QueryOne for call sites that treat "must exist" as an
// invariant: a query producing no rows fails with ErrNoRows.
func (db *SyncDB[R]) RequireOne(ctx context.Context, statement string, args ...any) (*Row, error) {
	row, err := db.QueryOne(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNoRows
	}
	return row, nil
}

// Execute forwards statement and args to the adapter's execute operation
// and returns its result unchanged.
func (db *SyncDB[R]) Execute(ctx context.Context, statement string, args ...any) (R, error) {
	return db.adapter.Execute(ctx, statement, args...)
}

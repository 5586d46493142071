package rowkit

import "context"

// SyncAdapter is the caller-supplied capability that actually runs
// statements against a database. Query returns one inner slice per result
// row, in result order; Execute returns an adapter-defined result R that
// rowkit passes through opaquely.
//
// The adapter owns connection lifecycle, statement preparation, and
// driver-specific argument binding. rowkit makes no assumptions about
// transactions, retries, or pooling.
type SyncAdapter[R any] interface {
	Query(ctx context.Context, statement string, args ...any) ([][]any, error)
	Execute(ctx context.Context, statement string, args ...any) (R, error)
}

// AsyncAdapter is the deferred form of SyncAdapter: the same two
// operations, each delivering its result through a Future.
type AsyncAdapter[R any] interface {
	Query(ctx context.Context, statement string, args ...any) *Future[[][]any]
	Execute(ctx context.Context, statement string, args ...any) *Future[R]
}

// AsAsync adapts a synchronous adapter into an asynchronous one. Each call
// runs the underlying operation in its own goroutine; cancellation remains
// whatever the synchronous adapter does with ctx.
func AsAsync[R any](adapter SyncAdapter[R]) AsyncAdapter[R] {
	return asyncBridge[R]{adapter: adapter}
}

type asyncBridge[R any] struct {
	adapter SyncAdapter[R]
}

func (b asyncBridge[R]) Query(ctx context.Context, statement string, args ...any) *Future[[][]any] {
	return Go(func() ([][]any, error) {
		return b.adapter.Query(ctx, statement, args...)
	})
}

func (b asyncBridge[R]) Execute(ctx context.Context, statement string, args ...any) *Future[R] {
	return Go(func() (R, error) {
		return b.adapter.Execute(ctx, statement, args...)
	})
}

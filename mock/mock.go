package mock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	rowkit "github.com/rowkit-project/rowkit"
)

// Operation names recorded on calls.
const (
	OpQuery   = "QUERY"
	OpExecute = "EXECUTE"
)

var (
	// ErrUnexpectedStatement is returned when a call's statement does not
	// match ExpectedStatement.
	ErrUnexpectedStatement = errors.New("unexpected statement")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Call records one adapter invocation.
type Call struct {
	// Op is OpQuery or OpExecute.
	Op string

	// Statement is the statement passed by the caller.
	Statement string

	// Args are the positional arguments passed by the caller.
	Args []any
}

// Config scripts the behavior of a mock adapter.
type Config[R any] struct {
	// Tuples is the result every Query returns.
	Tuples [][]any

	// Result is the value every Execute returns.
	Result R

	// ExpectedStatement, when non-empty, is enforced on every call.
	ExpectedStatement string

	// ArgsValidator validates the positional arguments of every call.
	ArgsValidator func([]any) error

	// Error is the error to return when Fail is set.
	Error error

	// Fail makes every operation return Error, or ErrOperationFailed when
	// Error is nil.
	Fail bool
}

// Adapter is a scriptable rowkit.SyncAdapter.
type Adapter[R any] struct {
	cfg Config[R]

	mu    sync.Mutex
	calls []Call
}

// Compile-time interface checks.
var (
	_ rowkit.SyncAdapter[int64]  = (*Adapter[int64])(nil)
	_ rowkit.AsyncAdapter[int64] = (*Async[int64])(nil)
)

// New creates a mock adapter from the provided configuration.
func New[R any](cfg Config[R]) (*Adapter[R], error) {
	return &Adapter[R]{cfg: cfg}, nil
}

// Calls returns a snapshot of the recorded invocations, in call order.
func (a *Adapter[R]) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Call, len(a.calls))
	copy(out, a.calls)
	return out
}

// Query validates the call and returns the scripted tuples.
func (a *Adapter[R]) Query(_ context.Context, statement string, args ...any) ([][]any, error) {
	a.record(OpQuery, statement, args)
	if err := a.validate(statement, args); err != nil {
		return nil, err
	}
	return a.cfg.Tuples, nil
}

// Execute validates the call and returns the scripted result.
func (a *Adapter[R]) Execute(_ context.Context, statement string, args ...any) (R, error) {
	var zero R
	a.record(OpExecute, statement, args)
	if err := a.validate(statement, args); err != nil {
		return zero, err
	}
	return a.cfg.Result, nil
}

// Async returns a deferred view of the same mock. Futures are settled
// before they are returned, so async-facade tests stay deterministic.
func (a *Adapter[R]) Async() *Async[R] {
	return &Async[R]{adapter: a}
}

func (a *Adapter[R]) record(op, statement string, args []any) {
	recorded := make([]any, len(args))
	copy(recorded, args)
	a.mu.Lock()
	a.calls = append(a.calls, Call{Op: op, Statement: statement, Args: recorded})
	a.mu.Unlock()
}

func (a *Adapter[R]) validate(statement string, args []any) error {
	if a.cfg.Fail {
		if a.cfg.Error != nil {
			return a.cfg.Error
		}
		return ErrOperationFailed
	}
	if a.cfg.ExpectedStatement != "" && a.cfg.ExpectedStatement != statement {
		return fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedStatement, a.cfg.ExpectedStatement, statement)
	}
	if a.cfg.ArgsValidator != nil {
		if err := a.cfg.ArgsValidator(args); err != nil {
			return err
		}
	}
	return nil
}

// Async is the deferred view of an Adapter, implementing
// rowkit.AsyncAdapter over pre-settled futures.
type Async[R any] struct {
	adapter *Adapter[R]
}

// Query runs the underlying mock query and returns a settled future.
func (s *Async[R]) Query(ctx context.Context, statement string, args ...any) *rowkit.Future[[][]any] {
	tuples, err := s.adapter.Query(ctx, statement, args...)
	if err != nil {
		return rowkit.Rejected[[][]any](err)
	}
	return rowkit.Resolved(tuples)
}

// Execute runs the underlying mock execute and returns a settled future.
func (s *Async[R]) Execute(ctx context.Context, statement string, args ...any) *rowkit.Future[R] {
	result, err := s.adapter.Execute(ctx, statement, args...)
	if err != nil {
		return rowkit.Rejected[R](err)
	}
	return rowkit.Resolved(result)
}

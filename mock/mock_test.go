package mock

import (
	"context"
	"errors"
	"testing"
)

func TestAdapter_ScriptedResponses(t *testing.T) {
	t.Parallel()

	m, err := New(Config[string]{
		Tuples: [][]any{{int64(1)}},
		Result: "ok",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tuples, err := m.Query(context.Background(), "SELECT 1")
	if err != nil || len(tuples) != 1 {
		t.Fatalf("Query: want scripted tuples got (%v, %v)", tuples, err)
	}

	result, err := m.Execute(context.Background(), "DELETE")
	if err != nil || result != "ok" {
		t.Fatalf("Execute: want (ok, nil) got (%q, %v)", result, err)
	}
}

func TestAdapter_ExpectedStatement(t *testing.T) {
	t.Parallel()

	m, _ := New(Config[int64]{ExpectedStatement: "SELECT 1"})

	if _, err := m.Query(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("matching statement: %v", err)
	}
	if _, err := m.Query(context.Background(), "SELECT 2"); !errors.Is(err, ErrUnexpectedStatement) {
		t.Fatalf("mismatched statement: want ErrUnexpectedStatement got %v", err)
	}
}

func TestAdapter_ArgsValidator(t *testing.T) {
	t.Parallel()

	bad := errors.New("bad args")
	m, _ := New(Config[int64]{
		ArgsValidator: func(args []any) error {
			if len(args) != 2 {
				return bad
			}
			return nil
		},
	})

	if _, err := m.Query(context.Background(), "q", 1, 2); err != nil {
		t.Fatalf("valid args: %v", err)
	}
	if _, err := m.Execute(context.Background(), "q", 1); !errors.Is(err, bad) {
		t.Fatalf("invalid args: want bad got %v", err)
	}
}

func TestAdapter_Fail(t *testing.T) {
	t.Parallel()

	m, _ := New(Config[int64]{Fail: true})
	if _, err := m.Query(context.Background(), "q"); !errors.Is(err, ErrOperationFailed) {
		t.Fatalf("Fail without Error: want ErrOperationFailed got %v", err)
	}

	boom := errors.New("boom")
	m, _ = New(Config[int64]{Fail: true, Error: boom})
	if _, err := m.Execute(context.Background(), "q"); !errors.Is(err, boom) {
		t.Fatalf("Fail with Error: want boom got %v", err)
	}
}

func TestAdapter_RecordsCalls(t *testing.T) {
	t.Parallel()

	m, _ := New(Config[int64]{})
	_, _ = m.Query(context.Background(), "SELECT 1", "a")
	_, _ = m.Execute(context.Background(), "DELETE", int64(2))

	calls := m.Calls()
	if len(calls) != 2 {
		t.Fatalf("Calls: want 2 got %d", len(calls))
	}
	if calls[0].Op != OpQuery || calls[0].Statement != "SELECT 1" || calls[0].Args[0] != "a" {
		t.Fatalf("first call mismatch: %+v", calls[0])
	}
	if calls[1].Op != OpExecute || calls[1].Args[0] != int64(2) {
		t.Fatalf("second call mismatch: %+v", calls[1])
	}
}

func TestAsync_SettledFutures(t *testing.T) {
	t.Parallel()

	m, _ := New(Config[int64]{Tuples: [][]any{{int64(1)}}})
	async := m.Async()

	f := async.Query(context.Background(), "SELECT 1")
	select {
	case <-f.Done():
	default:
		t.Fatal("Query future not settled on return")
	}

	tuples, err := f.Wait(context.Background())
	if err != nil || len(tuples) != 1 {
		t.Fatalf("Wait: want one tuple got (%v, %v)", tuples, err)
	}

	boom := errors.New("boom")
	m, _ = New(Config[int64]{Fail: true, Error: boom})
	if _, err := m.Async().Execute(context.Background(), "q").Wait(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("rejected future: want boom got %v", err)
	}
}

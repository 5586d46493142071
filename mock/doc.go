/*
Package mock provides scriptable rowkit adapters for testing code that
depends on a database facade without a real driver.

The mock validates what your code sends — statement and positional
arguments — and returns whatever you script: result tuples, an execute
result, or a failure. Every invocation is recorded for assertions.

# Basic usage

	m, _ := mock.New(mock.Config[int64]{
		Tuples: [][]any{{int64(1), "alpha"}},
		Result: 1,
	})

	db, _ := rowkit.NewSyncDB[int64](m)
	rows, err := db.Query(ctx, "SELECT id, name FROM things")
	// assert rows.Count() == 1 and err == nil

# Validating calls

	m, _ := mock.New(mock.Config[int64]{
		ExpectedStatement: "DELETE FROM things WHERE id = ?",
		ArgsValidator: func(args []any) error {
			// decode and assert arguments here
			return nil
		},
	})

# Simulating failures

Set Fail to make every operation return Error (or ErrOperationFailed when
Error is nil).

# Inspecting calls

	for _, c := range m.Calls() {
		// c.Op, c.Statement, c.Args
	}

The Async method returns a deferred view of the same mock whose futures are
already settled when returned, keeping async-facade tests deterministic.
*/
package mock

package sqladapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	rowkit "github.com/rowkit-project/rowkit"
)

// ErrNilDB is returned when the adapter is constructed without a database
// handle.
var ErrNilDB = errors.New("database handle cannot be nil")

// Queryer is implemented by *sql.DB, *sql.Tx, *sql.Conn, and any wrapper
// exposing context-aware query and exec operations.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ExecResult mirrors the driver's execute outcome.
type ExecResult struct {
	// LastInsertID is the ID of the last inserted row, when the driver
	// supports it.
	LastInsertID int64

	// RowsAffected is the number of rows affected by the statement, when
	// the driver supports it.
	RowsAffected int64
}

// Config controls how the adapter talks to database/sql.
type Config struct {
	// DB is the database handle used for all operations.
	DB Queryer

	// Logger, when set, receives a debug entry per operation.
	Logger *slog.Logger
}

// Adapter is the database/sql-backed rowkit adapter.
type Adapter struct {
	db     Queryer
	logger *slog.Logger
}

var _ rowkit.SyncAdapter[ExecResult] = (*Adapter)(nil)

// New creates an adapter over the configured database handle.
func New(cfg Config) (*Adapter, error) {
	if cfg.DB == nil {
		return nil, ErrNilDB
	}
	return &Adapter{db: cfg.DB, logger: cfg.Logger}, nil
}

// Query runs statement with args and materializes every result row into a
// value tuple, in result order. database/sql normalizes driver values to
// int64, float64, bool, []byte, string, time.Time, or nil; they pass
// through unmodified except []byte columns, which are copied since drivers
// may reuse scan buffers between rows.
func (a *Adapter) Query(ctx context.Context, statement string, args ...any) ([][]any, error) {
	if a.logger != nil {
		a.logger.DebugContext(ctx, "querying database", "statement", statement, "args", len(args))
	}

	rows, err := a.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var tuples [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
		}
		tuples = append(tuples, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return tuples, nil
}

// Execute runs statement with args. Drivers that do not support
// LastInsertId or RowsAffected leave the corresponding field zero.
func (a *Adapter) Execute(ctx context.Context, statement string, args ...any) (ExecResult, error) {
	if a.logger != nil {
		a.logger.DebugContext(ctx, "executing statement", "statement", statement, "args", len(args))
	}

	res, err := a.db.ExecContext(ctx, statement, args...)
	if err != nil {
		return ExecResult{}, fmt.Errorf("failed to execute statement: %w", err)
	}

	var out ExecResult
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	if n, err := res.RowsAffected(); err == nil {
		out.RowsAffected = n
	}
	return out, nil
}

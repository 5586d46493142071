package pgxadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	rowkit "github.com/rowkit-project/rowkit"
)

// ErrNilConn is returned when the adapter is constructed without a
// connection handle.
var ErrNilConn = errors.New("connection handle cannot be nil")

// Queryer is implemented by *pgx.Conn, *pgxpool.Pool, and pgx.Tx.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Config controls how the adapter talks to pgx.
type Config struct {
	// Conn is the connection handle used for all operations.
	Conn Queryer

	// Logger, when set, receives a debug entry per operation.
	Logger *slog.Logger
}

// Adapter is the pgx-backed rowkit adapter.
type Adapter struct {
	conn   Queryer
	logger *slog.Logger
}

var _ rowkit.SyncAdapter[pgconn.CommandTag] = (*Adapter)(nil)

// New creates an adapter over the configured connection handle.
func New(cfg Config) (*Adapter, error) {
	if cfg.Conn == nil {
		return nil, ErrNilConn
	}
	return &Adapter{conn: cfg.Conn, logger: cfg.Logger}, nil
}

// Query runs statement with args and materializes every result row into a
// value tuple, in result order.
func (a *Adapter) Query(ctx context.Context, statement string, args ...any) ([][]any, error) {
	if a.logger != nil {
		a.logger.DebugContext(ctx, "querying database", "statement", statement, "args", len(args))
	}

	rows, err := a.conn.Query(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var tuples [][]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}
		tuple := make([]any, len(values))
		for i, v := range values {
			tuple[i] = normalize(v)
		}
		tuples = append(tuples, tuple)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return tuples, nil
}

// Execute runs statement with args and returns pgx's command tag unchanged.
func (a *Adapter) Execute(ctx context.Context, statement string, args ...any) (pgconn.CommandTag, error) {
	if a.logger != nil {
		a.logger.DebugContext(ctx, "executing statement", "statement", statement, "args", len(args))
	}

	tag, err := a.conn.Exec(ctx, statement, args...)
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to execute statement: %w", err)
	}
	return tag, nil
}

// normalize widens pgx's narrow numeric decodings to the value kinds
// rowkit accessors expect, and copies byte slices out of pgx-owned
// buffers.
func normalize(v any) any {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case uint32:
		return int64(n)
	case float32:
		return float64(n)
	case []byte:
		return append([]byte(nil), n...)
	default:
		return v
	}
}

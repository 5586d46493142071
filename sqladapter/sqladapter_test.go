package sqladapter

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rowkit "github.com/rowkit-project/rowkit"

	_ "modernc.org/sqlite"
)

func TestNew_NilDB(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrNilDB)
}

func TestAdapter_Query(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	const query = "SELECT id, name FROM users WHERE id > ?"
	mock.ExpectQuery(query).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(7), "alpha").
			AddRow(int64(8), "beta"))

	adp, err := New(Config{DB: db})
	require.NoError(t, err)

	tuples, err := adp.Query(context.Background(), query, int64(5))
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	assert.Equal(t, int64(7), tuples[0][0])
	assert.Equal(t, "alpha", tuples[0][1])
	assert.Equal(t, int64(8), tuples[1][0])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_Query_Error(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	boom := errors.New("relation does not exist")
	mock.ExpectQuery("SELECT * FROM missing").WillReturnError(boom)

	adp, err := New(Config{DB: db})
	require.NoError(t, err)

	_, err = adp.Query(context.Background(), "SELECT * FROM missing")
	require.ErrorIs(t, err, boom)
}

func TestAdapter_Execute(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	const stmt = "UPDATE users SET name = ? WHERE id = ?"
	mock.ExpectExec(stmt).
		WithArgs("gamma", int64(7)).
		WillReturnResult(sqlmock.NewResult(42, 3))

	adp, err := New(Config{DB: db})
	require.NoError(t, err)

	res, err := adp.Execute(context.Background(), stmt, "gamma", int64(7))
	require.NoError(t, err)
	assert.Equal(t, ExecResult{LastInsertID: 42, RowsAffected: 3}, res)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_Execute_Error(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	boom := errors.New("constraint violation")
	mock.ExpectExec("DELETE FROM users").WillReturnError(boom)

	adp, err := New(Config{DB: db})
	require.NoError(t, err)

	_, err = adp.Execute(context.Background(), "DELETE FROM users")
	require.ErrorIs(t, err, boom)
}

// TestAdapter_SQLite runs the full facade stack against an in-memory
// SQLite database.
func TestAdapter_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	// In-memory SQLite is per-connection; keep the pool at one.
	db.SetMaxOpenConns(1)

	adp, err := New(Config{
		DB:     db,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	facade, err := rowkit.NewSyncDB[ExecResult](adp)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = facade.Execute(ctx, `CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, score REAL, avatar BLOB, note TEXT)`)
	require.NoError(t, err)

	res, err := facade.Execute(ctx,
		`INSERT INTO users (name, score, avatar, note) VALUES (?, ?, ?, ?)`,
		"alpha", 12.5, []byte{0x01, 0x02}, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.RowsAffected)
	assert.EqualValues(t, 1, res.LastInsertID)

	row, err := facade.RequireOne(ctx,
		`SELECT id, name, score, avatar, note FROM users WHERE name = ?`, "alpha")
	require.NoError(t, err)

	id, err := row.Int64(0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	name, err := row.String(1)
	require.NoError(t, err)
	assert.Equal(t, "alpha", name)

	score, err := row.Float64(2)
	require.NoError(t, err)
	assert.Equal(t, 12.5, score)

	avatar, err := row.Bytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, avatar)

	note, err := row.NullString(4)
	require.NoError(t, err)
	assert.Nil(t, note)

	_, err = row.Bool(1)
	require.ErrorIs(t, err, rowkit.ErrTypeMismatch)

	missing, err := facade.QueryOne(ctx, `SELECT id FROM users WHERE name = ?`, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

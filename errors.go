package rowkit

import "errors"

var (
	// ErrTypeMismatch indicates a column value whose kind does not match the requested type.
	ErrTypeMismatch = errors.New("column value type mismatch")

	// ErrNoRows is returned by RequireOne when the query produced no rows.
	ErrNoRows = errors.New("no rows in result")

	// ErrAdapterNil is returned when a facade is constructed without an adapter.
	ErrAdapterNil = errors.New("adapter cannot be nil")
)

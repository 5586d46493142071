package rowkit

import "math"

// Row is one result tuple with type-checked access by zero-based column
// position. The backing slice is immutable after construction; every
// accessor is a pure read.
//
// Column values carry one of six kinds: string, float64, int64, bool,
// []byte, or nil for SQL NULL. Typed accessors narrow to the requested kind
// and fail with ErrTypeMismatch when the value does not match; no implicit
// conversion is performed except the integral float64 to int64 widening
// documented on Int64.
type Row struct {
	values []any
}

// NewRow wraps a single result tuple. The slice is retained as-is, not
// copied; callers must not mutate it afterwards.
func NewRow(values []any) Row {
	return Row{values: values}
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.values)
}

// Get returns the raw value at index with no type enforcement. An index
// outside [0, Len()) reads as NULL, the same as an absent column.
func (r Row) Get(index int) any {
	if index < 0 || index >= len(r.values) {
		return nil
	}
	return r.values[index]
}

// String returns the string value at index.
func (r Row) String(index int) (string, error) {
	v := r.Get(index)
	s, ok := v.(string)
	if !ok {
		return "", mismatch(index, v, "string")
	}
	return s, nil
}

// NullString returns the string value at index, or nil for NULL.
func (r Row) NullString(index int) (*string, error) {
	v := r.Get(index)
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, mismatch(index, v, "string")
	}
	return &s, nil
}

// Float64 returns the numeric value at index. Both numeric kinds are
// accepted; int64 values are converted.
func (r Row) Float64(index int) (float64, error) {
	v := r.Get(index)
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, mismatch(index, v, "number")
}

// NullFloat64 returns the numeric value at index, or nil for NULL.
func (r Row) NullFloat64(index int) (*float64, error) {
	v := r.Get(index)
	if v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int64:
		f := float64(n)
		return &f, nil
	}
	return nil, mismatch(index, v, "number")
}

// Int64 returns the wide-integer value at index. An int64 passes through
// unchanged. A float64 is accepted only when it is mathematically integral
// and within int64 range, in which case it is widened losslessly; this is
// the one implicit conversion rowkit performs, so large identifiers held in
// a floating column survive intact. Anything else fails with
// ErrTypeMismatch.
func (r Row) Int64(index int) (int64, error) {
	v := r.Get(index)
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		if n == math.Trunc(n) && n >= -(1<<63) && n < 1<<63 {
			return int64(n), nil
		}
	}
	return 0, mismatch(index, v, "int64")
}

// NullInt64 returns the wide-integer value at index, or nil for NULL. The
// widening rules match Int64.
func (r Row) NullInt64(index int) (*int64, error) {
	v := r.Get(index)
	if v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case int64:
		return &n, nil
	case float64:
		if n == math.Trunc(n) && n >= -(1<<63) && n < 1<<63 {
			i := int64(n)
			return &i, nil
		}
	}
	return nil, mismatch(index, v, "int64")
}

// Bool returns the boolean value at index. Numeric values are not coerced;
// callers needing bool-from-integer semantics convert at the call site.
func (r Row) Bool(index int) (bool, error) {
	v := r.Get(index)
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(index, v, "bool")
	}
	return b, nil
}

// NullBool returns the boolean value at index, or nil for NULL.
func (r Row) NullBool(index int) (*bool, error) {
	v := r.Get(index)
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, mismatch(index, v, "bool")
	}
	return &b, nil
}

// Bytes returns the byte-sequence value at index. Strings are not coerced.
func (r Row) Bytes(index int) ([]byte, error) {
	v := r.Get(index)
	b, ok := v.([]byte)
	if !ok {
		return nil, mismatch(index, v, "bytes")
	}
	return b, nil
}

// NullBytes returns the byte-sequence value at index, or nil for NULL.
func (r Row) NullBytes(index int) ([]byte, error) {
	v := r.Get(index)
	if v == nil {
		return nil, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, mismatch(index, v, "bytes")
	}
	return b, nil
}

/*
Package rowkit is a thin type-safety layer between application code and a
caller-supplied database adapter.

rowkit never talks to a database itself. Callers provide an adapter (anything
implementing SyncAdapter or AsyncAdapter) that runs a statement with
positional arguments and hands back raw result tuples; rowkit wraps those
tuples in Rows and Row values offering type-checked column access. Values are
narrowed, never converted — with a single exception for losslessly widening
integral numbers to int64 — and a mismatch fails predictably with
ErrTypeMismatch.

The SyncDB facade calls straight through to its adapter. The AsyncDB facade
exposes the same operations through Future values that settle when the
adapter's deferred result does. Neither facade retries, logs, caches, or
translates adapter errors; recovery belongs to the caller.

Adapter implementations for common drivers live in the sqladapter,
pgxadapter, and wapcadapter subpackages, and the mock subpackage provides
scriptable adapters for tests.
*/
package rowkit

/*
Package sqladapter implements rowkit.SyncAdapter on top of database/sql.

Any handle exposing QueryContext and ExecContext works: *sql.DB, *sql.Tx,
*sql.Conn, or a wrapper. Query materializes the full result into value
tuples, leaving driver values untouched except for []byte columns, which
are copied because drivers may reuse scan buffers. Execute reports the
driver's LastInsertId and RowsAffected through ExecResult.

Combine with rowkit.AsAsync to serve the asynchronous facade.
*/
package sqladapter

/*
Package pgxadapter implements rowkit.SyncAdapter on top of jackc/pgx v5.

Any handle exposing pgx's Query and Exec works: *pgx.Conn, *pgxpool.Pool,
or a pgx.Tx. The execute result is pgx's own pgconn.CommandTag, passed
through unchanged — a worked example of the adapter-defined result type.

Query materializes the full result into value tuples. pgx decodes narrow
integer and float columns to int32/float32 and similar; the adapter widens
those to the int64/float64 kinds rowkit accessors expect.
*/
package pgxadapter

/*
Package wapcadapter implements rowkit.SyncAdapter over the "sql" capability
of a Tarmac waPC host runtime.

Statements travel to the host as protobuf payloads (SQLQuery / SQLExec);
responses carry a host status, the column names, and a JSON-encoded result
set that the adapter decodes into rowkit value tuples. Integer-looking JSON
numbers decode as int64 so large identifiers survive intact.

The host protocol carries the statement only: there is no positional
parameter field, so calls with arguments fail with ErrParamsUnsupported
rather than silently dropping them.

Host calls are synchronous inside a WebAssembly guest; wrap the adapter
with rowkit.AsAsync if the asynchronous facade is wanted.
*/
package wapcadapter

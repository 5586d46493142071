package wapcadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/sql"
	wapc "github.com/wapc/wapc-guest-tinygo"

	rowkit "github.com/rowkit-project/rowkit"
)

const (
	// DefaultNamespace is the host namespace used when none is configured.
	DefaultNamespace = "tarmac"

	capabilityName = "sql"
	fnExec         = "exec"
	fnQuery        = "query"

	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

var (
	// ErrInvalidStatement indicates an empty statement.
	ErrInvalidStatement = errors.New("statement is invalid")

	// ErrParamsUnsupported indicates positional arguments on a host call
	// whose protocol cannot carry them.
	ErrParamsUnsupported = errors.New("host sql capability does not support positional arguments")

	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to marshal request")

	// ErrUnmarshalResponse wraps failures while decoding the host response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")

	// ErrDecodeData wraps failures while decoding the JSON result set.
	ErrDecodeData = errors.New("failed to decode result data")

	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError means the host completed the call but reported a failure status.
	ErrHostError = errors.New("host returned an error status")
)

// HostCall defines the waPC host function signature used by SQL operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// ExecResult mirrors the SQLExecResponse payload fields.
type ExecResult struct {
	// LastInsertID is the ID of the last inserted row, when available.
	LastInsertID int64

	// RowsAffected is the number of rows affected by the statement.
	RowsAffected int64
}

// Config controls how the adapter interacts with the host runtime.
type Config struct {
	// Namespace is the host namespace used for SQL operations. Defaults to
	// DefaultNamespace.
	Namespace string

	// HostCall overrides the waPC host function used for SQL operations.
	HostCall HostCall
}

// Adapter is the waPC-backed rowkit adapter.
type Adapter struct {
	namespace string
	hostCall  HostCall
}

var _ rowkit.SyncAdapter[ExecResult] = (*Adapter)(nil)

// New creates an adapter over the configured host runtime.
func New(config Config) (*Adapter, error) {
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Adapter{namespace: namespace, hostCall: hostCall}, nil
}

// Query sends statement to the host's query operation and decodes the
// response into value tuples.
func (a *Adapter) Query(ctx context.Context, statement string, args ...any) ([][]any, error) {
	if statement == "" {
		return nil, ErrInvalidStatement
	}
	if len(args) > 0 {
		return nil, ErrParamsUnsupported
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := &proto.SQLQuery{Query: []byte(statement)}
	b, err := req.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := a.hostCall(a.namespace, capabilityName, fnQuery, b)
	if callErr != nil && len(respBytes) == 0 {
		return nil, errors.Join(ErrHostCall, callErr)
	}

	var resp proto.SQLQueryResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		if callErr != nil {
			return nil, errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid, ErrUnmarshalResponse, unmarshalErr)
		}
		return nil, errors.Join(ErrHostResponseInvalid, ErrUnmarshalResponse, unmarshalErr)
	}

	if statusErr := validateStatus(resp.GetStatus(), callErr); statusErr != nil {
		return nil, statusErr
	}

	return decodeData(resp.GetColumns(), resp.GetData())
}

// Execute sends statement to the host's exec operation.
func (a *Adapter) Execute(ctx context.Context, statement string, args ...any) (ExecResult, error) {
	if statement == "" {
		return ExecResult{}, ErrInvalidStatement
	}
	if len(args) > 0 {
		return ExecResult{}, ErrParamsUnsupported
	}
	if err := ctx.Err(); err != nil {
		return ExecResult{}, err
	}

	req := &proto.SQLExec{Query: []byte(statement)}
	b, err := req.MarshalVT()
	if err != nil {
		return ExecResult{}, errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := a.hostCall(a.namespace, capabilityName, fnExec, b)
	if callErr != nil && len(respBytes) == 0 {
		return ExecResult{}, errors.Join(ErrHostCall, callErr)
	}

	var resp proto.SQLExecResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		if callErr != nil {
			return ExecResult{}, errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid, ErrUnmarshalResponse, unmarshalErr)
		}
		return ExecResult{}, errors.Join(ErrHostResponseInvalid, ErrUnmarshalResponse, unmarshalErr)
	}

	if statusErr := validateStatus(resp.GetStatus(), callErr); statusErr != nil {
		return ExecResult{}, statusErr
	}

	return ExecResult{
		LastInsertID: resp.GetLastInsertId(),
		RowsAffected: resp.GetRowsAffected(),
	}, nil
}

func validateStatus(status *sdkproto.Status, callErr error) error {
	if status == nil {
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid)
		}
		return ErrHostResponseInvalid
	}

	code := status.GetCode()
	switch code {
	case hostStatusOK, hostStatusPartial:
		return nil
	case hostStatusBadInput, hostStatusMissing, hostStatusError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostError, errors.New(detail))
		}
		return errors.Join(ErrHostError, errors.New(detail))
	default:
		statusErr := fmt.Errorf("unexpected host status code %d", code)
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid, statusErr)
		}
		return errors.Join(ErrHostResponseInvalid, statusErr)
	}
}

// decodeData converts the host's JSON result set into value tuples ordered
// by the response's column list. A column absent from a record reads as
// NULL.
func decodeData(columns []string, data []byte) ([][]any, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Join(ErrHostResponseInvalid, ErrDecodeData, err)
	}

	tuples := make([][]any, 0, len(records))
	for _, record := range records {
		tuple := make([]any, len(columns))
		for i, column := range columns {
			tuple[i] = convertJSONValue(record[column])
		}
		tuples = append(tuples, tuple)
	}
	return tuples, nil
}

// convertJSONValue maps a decoded JSON value onto rowkit value kinds.
// Integer-looking numbers become int64 so identifiers beyond float64's
// safe range survive; everything else decodes as float64.
func convertJSONValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

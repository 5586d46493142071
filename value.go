package rowkit

import "fmt"

// kindOf names the dynamic kind of a column value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int64:
		return "int64"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []byte:
		return "bytes"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func mismatch(index int, v any, want string) error {
	return fmt.Errorf("%w: column %d holds %s, want %s", ErrTypeMismatch, index, kindOf(v), want)
}

package models

import (
	"encoding/json"
)

// ErrorCode is the value of the "error" field of a failed action.
type ErrorCode string

const (
	// ErrorCodeFailed is an unspecified failure. It is encoded as JSON true.
	ErrorCodeFailed        ErrorCode = "failed"
	ErrorCodeInvalidKey    ErrorCode = "invalidkey"
	ErrorCodeLimit         ErrorCode = "limit"
	ErrorCodeExists        ErrorCode = "exists"
	ErrorCodeNotExists     ErrorCode = "does not exist"
	ErrorCodeInvalidJSON   ErrorCode = "invalid_json"
	ErrorCodeMalformed     ErrorCode = "malformed"
	ErrorCodeUnknownAction ErrorCode = "unknown_action"
)

// MarshalJSON implements [json.Marshaler].
func (c ErrorCode) MarshalJSON() ([]byte, error) {
	if c == ErrorCodeFailed {
		return []byte("true"), nil
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON implements [json.Unmarshaler]. It accepts both the boolean
// and the string form.
func (c *ErrorCode) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		if flag {
			*c = ErrorCodeFailed
		} else {
			*c = ""
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = ErrorCode(s)
	return nil
}

package message

import (
	"encoding/json"
	"errors"
)

// ErrNotTextOrBinary is returned when decoding a message whose variant is
// neither text nor binary. The payload of such a message is never inspected.
var ErrNotTextOrBinary = errors.New("cannot decode a message that is neither text nor binary")

// JSONError wraps a failure reported by encoding/json while converting a
// value to or from a message body. The underlying diagnostic (including any
// offset information) is preserved and available via Unwrap.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string { return "json: " + e.Err.Error() }

func (e *JSONError) Unwrap() error { return e.Err }

// TextFromJSON encodes v as JSON and returns it as a text message.
//
// Encoding fails if v contains values encoding/json cannot represent, such
// as a map keyed by a type without a string form, or a MarshalJSON
// implementation that returns an error.
func TextFromJSON(v any) (*Message, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	return NewText(string(b)), nil
}

// BinaryFromJSON encodes v as JSON and returns it as a binary message. The
// payload is byte-for-byte identical to what TextFromJSON would produce.
func BinaryFromJSON(v any) (*Message, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	return NewBinary(b), nil
}

// JSON decodes the message body as JSON into v. Text messages are parsed
// from their string payload and binary messages from their byte payload;
// any other variant returns ErrNotTextOrBinary without parsing. Malformed
// JSON and type mismatches surface as a JSONError.
func (m *Message) JSON(v any) error {
	switch m.Type {
	case TypeText:
		if err := json.Unmarshal([]byte(m.Text), v); err != nil {
			return &JSONError{Err: err}
		}
	case TypeBinary:
		if err := json.Unmarshal(m.Data, v); err != nil {
			return &JSONError{Err: err}
		}
	default:
		return ErrNotTextOrBinary
	}
	return nil
}

// DecodeJSON decodes the message body as JSON and returns the value.
func DecodeJSON[T any](m *Message) (T, error) {
	var v T
	err := m.JSON(&v)
	return v, err
}

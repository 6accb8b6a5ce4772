package message

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// Codec is a pluggable body encoder/decoder (default JSON).
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	ContentType() string
}

// jsonCodec implements Codec using the stdlib encoding/json.
type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) { return json.Marshal(v) }
func (jsonCodec) Decode(b []byte, v any) error { return json.Unmarshal(b, v) }
func (jsonCodec) ContentType() string          { return "application/json" }

var JSONCodec Codec = jsonCodec{}

// cborCodec implements Codec using fxamacker/cbor.
type cborCodec struct{}

func (cborCodec) Encode(v any) ([]byte, error) { return cbor.Marshal(v) }
func (cborCodec) Decode(b []byte, v any) error { return cbor.Unmarshal(b, v) }
func (cborCodec) ContentType() string          { return "application/cbor" }

var CBORCodec Codec = cborCodec{}

// EncodeWith encodes v with c and wraps the result as a message: a text
// message when the codec produces JSON, a binary message otherwise.
func EncodeWith(c Codec, v any) (*Message, error) {
	b, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.ContentType() == JSONCodec.ContentType() {
		return NewText(string(b)), nil
	}
	return NewBinary(b), nil
}

// DecodeWith decodes the message body with c into v. As with JSON, only
// text and binary messages carry a decodable body; any other variant
// returns ErrNotTextOrBinary.
func (m *Message) DecodeWith(c Codec, v any) error {
	switch m.Type {
	case TypeText:
		return c.Decode([]byte(m.Text), v)
	case TypeBinary:
		return c.Decode(m.Data, v)
	default:
		return ErrNotTextOrBinary
	}
}

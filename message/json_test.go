package message

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jsonRecord struct {
	A int `json:"a"`
}

type jsonPayload struct {
	Name    string         `json:"name"`
	Count   int            `json:"count"`
	Tags    []string       `json:"tags"`
	Attrs   map[string]any `json:"attrs"`
	Missing *string        `json:"missing,omitempty"`
}

func TestTextFromJSON(t *testing.T) {
	t.Run("simple record", func(t *testing.T) {
		m, err := TextFromJSON(jsonRecord{A: 1})
		require.NoError(t, err)
		assert.Equal(t, TypeText, m.Type)
		assert.Equal(t, `{"a":1}`, m.Text)
		assert.Nil(t, m.Data)
	})

	t.Run("round trip", func(t *testing.T) {
		in := jsonPayload{
			Name:  "order.created",
			Count: 3,
			Tags:  []string{"a", "b"},
			Attrs: map[string]any{"region": "us-east-1"},
		}
		m, err := TextFromJSON(in)
		require.NoError(t, err)

		var out jsonPayload
		require.NoError(t, m.JSON(&out))
		assert.Equal(t, in, out)
	})

	t.Run("unsupported map key type", func(t *testing.T) {
		type badKey struct{ X int }
		m, err := TextFromJSON(map[badKey]int{{X: 1}: 1})
		require.Error(t, err)
		assert.Nil(t, m)

		var jerr *JSONError
		require.ErrorAs(t, err, &jerr)
		assert.NotNil(t, jerr.Unwrap())
	})

	t.Run("unsupported value type", func(t *testing.T) {
		_, err := TextFromJSON(map[string]any{"ch": make(chan int)})
		require.Error(t, err)

		var jerr *JSONError
		assert.ErrorAs(t, err, &jerr)
	})
}

func TestBinaryFromJSON(t *testing.T) {
	t.Run("simple record", func(t *testing.T) {
		m, err := BinaryFromJSON(jsonRecord{A: 1})
		require.NoError(t, err)
		assert.Equal(t, TypeBinary, m.Type)
		assert.Equal(t, []byte(`{"a":1}`), m.Data)
		assert.Empty(t, m.Text)
	})

	t.Run("round trip", func(t *testing.T) {
		in := jsonPayload{Name: "x", Count: -7, Tags: []string{}}
		m, err := BinaryFromJSON(in)
		require.NoError(t, err)

		var out jsonPayload
		require.NoError(t, m.JSON(&out))
		assert.Equal(t, in, out)
	})

	t.Run("matches text encoding byte for byte", func(t *testing.T) {
		in := jsonPayload{
			Name:  "unicode éè 中文",
			Count: 42,
			Tags:  []string{"x", "y", "z"},
			Attrs: map[string]any{"nested": map[string]any{"k": "v"}},
		}
		text, err := TextFromJSON(in)
		require.NoError(t, err)
		bin, err := BinaryFromJSON(in)
		require.NoError(t, err)

		assert.Equal(t, []byte(text.Text), bin.Data)
	})

	t.Run("encoding failure", func(t *testing.T) {
		type badKey struct{ X int }
		_, err := BinaryFromJSON(map[badKey]int{{X: 1}: 1})
		require.Error(t, err)

		var jerr *JSONError
		assert.ErrorAs(t, err, &jerr)
	})
}

func TestMessageJSON(t *testing.T) {
	t.Run("decode text message", func(t *testing.T) {
		var out jsonRecord
		require.NoError(t, NewText(`{"a":1}`).JSON(&out))
		assert.Equal(t, jsonRecord{A: 1}, out)
	})

	t.Run("decode binary message", func(t *testing.T) {
		var out jsonRecord
		require.NoError(t, NewBinary([]byte(`{"a":2}`)).JSON(&out))
		assert.Equal(t, jsonRecord{A: 2}, out)
	})

	t.Run("malformed text payload", func(t *testing.T) {
		var out map[string]any
		err := NewText(`{not json`).JSON(&out)
		require.Error(t, err)

		var jerr *JSONError
		require.ErrorAs(t, err, &jerr)
		var serr *json.SyntaxError
		assert.ErrorAs(t, err, &serr)
	})

	t.Run("type mismatch", func(t *testing.T) {
		var out jsonRecord
		err := NewText(`{"a":"not a number"}`).JSON(&out)
		require.Error(t, err)

		var jerr *JSONError
		assert.ErrorAs(t, err, &jerr)
		assert.False(t, errors.Is(err, ErrNotTextOrBinary))
	})

	t.Run("ping message is rejected without parsing", func(t *testing.T) {
		var out any
		// the payload is valid JSON, it must still be rejected
		err := NewPing([]byte(`{"a":1}`)).JSON(&out)
		assert.ErrorIs(t, err, ErrNotTextOrBinary)
		assert.Nil(t, out)
	})

	t.Run("pong message is rejected", func(t *testing.T) {
		var out any
		assert.ErrorIs(t, NewPong(nil).JSON(&out), ErrNotTextOrBinary)
	})

	t.Run("close message is rejected", func(t *testing.T) {
		var out any
		err := NewClose(CloseNormalClosure, `{"a":1}`).JSON(&out)
		assert.ErrorIs(t, err, ErrNotTextOrBinary)
	})

	t.Run("zero value message is rejected", func(t *testing.T) {
		var out any
		assert.ErrorIs(t, (&Message{}).JSON(&out), ErrNotTextOrBinary)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("typed decode", func(t *testing.T) {
		m, err := TextFromJSON(jsonRecord{A: 9})
		require.NoError(t, err)

		out, err := DecodeJSON[jsonRecord](m)
		require.NoError(t, err)
		assert.Equal(t, jsonRecord{A: 9}, out)
	})

	t.Run("error leaves zero value", func(t *testing.T) {
		out, err := DecodeJSON[jsonRecord](NewPing(nil))
		assert.ErrorIs(t, err, ErrNotTextOrBinary)
		assert.Equal(t, jsonRecord{}, out)
	})

	t.Run("map decode", func(t *testing.T) {
		out, err := DecodeJSON[map[string]int](NewBinary([]byte(`{"a":1,"b":2}`)))
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, out)
	})
}

func TestJSONErrorMessage(t *testing.T) {
	err := NewText(`[`).JSON(&struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json:")
}

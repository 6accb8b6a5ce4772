package message

// Type identifies the variant of a Message.
type Type int

const (
	// TypeText is a message carrying a UTF-8 text payload.
	TypeText Type = iota + 1
	// TypeBinary is a message carrying an opaque byte payload.
	TypeBinary
	// TypePing is a keepalive probe, optionally carrying application data.
	TypePing
	// TypePong is the answer to a ping, echoing its application data.
	TypePong
	// TypeClose signals the end of the connection with a status code and reason.
	TypeClose
)

// String returns the lowercase name of the message type.
func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeBinary:
		return "binary"
	case TypePing:
		return "ping"
	case TypePong:
		return "pong"
	case TypeClose:
		return "close"
	default:
		return "unknown"
	}
}

// CloseCode is an RFC 6455 close status code.
type CloseCode uint16

const (
	CloseNormalClosure   CloseCode = 1000
	CloseGoingAway       CloseCode = 1001
	CloseProtocolError   CloseCode = 1002
	CloseUnsupportedData CloseCode = 1003
	ClosePolicyViolation CloseCode = 1008
	CloseInternalError   CloseCode = 1011
)

// Message represents a single websocket message. Exactly one payload field
// is meaningful, selected by Type: Text for text messages, Data for binary,
// ping and pong messages, Code and Reason for close messages.
type Message struct {
	Type   Type
	Text   string
	Data   []byte
	Code   CloseCode
	Reason string
}

// NewText creates a text message.
func NewText(text string) *Message {
	return &Message{Type: TypeText, Text: text}
}

// NewBinary creates a binary message. The data is not copied.
func NewBinary(data []byte) *Message {
	return &Message{Type: TypeBinary, Data: data}
}

// NewPing creates a ping message with optional application data.
func NewPing(data []byte) *Message {
	return &Message{Type: TypePing, Data: data}
}

// NewPong creates a pong message with optional application data.
func NewPong(data []byte) *Message {
	return &Message{Type: TypePong, Data: data}
}

// NewClose creates a close message with the given status code and reason.
func NewClose(code CloseCode, reason string) *Message {
	return &Message{Type: TypeClose, Code: code, Reason: reason}
}

// Clone creates a deep copy of the message.
func (m *Message) Clone() *Message {
	clone := &Message{
		Type:   m.Type,
		Text:   m.Text,
		Code:   m.Code,
		Reason: m.Reason,
	}
	if m.Data != nil {
		clone.Data = make([]byte, len(m.Data))
		copy(clone.Data, m.Data)
	}
	return clone
}

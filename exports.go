package websocket

// Re-export core types from subpackages so most callers only import the
// root package.
import (
	"github.com/throneless-tech/reqwest-websocket/client"
	"github.com/throneless-tech/reqwest-websocket/message"
)

// Core types
type Message = message.Message
type Type = message.Type
type CloseCode = message.CloseCode
type Codec = message.Codec
type Conn = client.Conn

// Message variants
const (
	TypeText   = message.TypeText
	TypeBinary = message.TypeBinary
	TypePing   = message.TypePing
	TypePong   = message.TypePong
	TypeClose  = message.TypeClose
)

// Close status codes
const (
	CloseNormalClosure   = message.CloseNormalClosure
	CloseGoingAway       = message.CloseGoingAway
	CloseProtocolError   = message.CloseProtocolError
	CloseUnsupportedData = message.CloseUnsupportedData
	ClosePolicyViolation = message.ClosePolicyViolation
	CloseInternalError   = message.CloseInternalError
)

// Message constructors
var (
	NewText   = message.NewText
	NewBinary = message.NewBinary
	NewPing   = message.NewPing
	NewPong   = message.NewPong
	NewClose  = message.NewClose
)

// JSON adapter
var (
	TextFromJSON   = message.TextFromJSON
	BinaryFromJSON = message.BinaryFromJSON
)

// Codecs
var (
	JSONCodec = message.JSONCodec
	CBORCodec = message.CBORCodec
)

// Connecting
var Dial = client.Dial

// Option types
type Option = client.Option

var (
	WithHandshakeTimeout = client.WithHandshakeTimeout
	WithTLS              = client.WithTLS
	WithRequestHeader    = client.WithRequestHeader
	WithSubprotocols     = client.WithSubprotocols
	WithReadLimit        = client.WithReadLimit
	WithWriteTimeout     = client.WithWriteTimeout
	WithPingInterval     = client.WithPingInterval
	WithWriteLimit       = client.WithWriteLimit
	WithCodec            = client.WithCodec
	WithLogger           = client.WithLogger
)

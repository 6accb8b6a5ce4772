package websocket

import (
	"github.com/throneless-tech/reqwest-websocket/client"
	"github.com/throneless-tech/reqwest-websocket/message"
)

// JSONError wraps an encoding/json failure from the message JSON adapter.
type JSONError = message.JSONError

var (
	// ErrNotTextOrBinary indicates a decode of a message that is neither
	// text nor binary.
	ErrNotTextOrBinary = message.ErrNotTextOrBinary
	// ErrConnClosed indicates the connection was already closed.
	ErrConnClosed = client.ErrConnClosed
)

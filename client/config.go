package client

import (
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/throneless-tech/reqwest-websocket/message"
)

// config holds all tunables for a Conn (via functional options).
type config struct {
	// Handshake
	HandshakeTimeout time.Duration
	TLS              *tls.Config
	RequestHeader    http.Header
	Subprotocols     []string

	// I/O
	ReadLimit    int64 // bytes; 0 keeps the transport default
	WriteTimeout time.Duration
	PingInterval time.Duration // 0 disables the keepalive loop
	WriteLimit   rate.Limit    // outbound messages per second; 0 disables
	WriteBurst   int

	// Defaults & behavior
	Codec message.Codec

	// Logging
	log *slog.Logger
}

func defaultConfig() config {
	return config{
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     5 * time.Second,
		WriteBurst:       1,
		Codec:            message.JSONCodec,
	}
}

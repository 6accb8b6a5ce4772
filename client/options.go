package client

import (
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/throneless-tech/reqwest-websocket/message"
)

// Option configures a Conn.
type Option func(*config)

// WithHandshakeTimeout sets the HTTP upgrade handshake timeout (default 10s).
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *config) { c.HandshakeTimeout = d }
}

// WithTLS sets the TLS configuration for wss:// endpoints.
func WithTLS(cfg *tls.Config) Option { return func(c *config) { c.TLS = cfg } }

// WithRequestHeader sets extra HTTP headers sent during the handshake.
func WithRequestHeader(h http.Header) Option { return func(c *config) { c.RequestHeader = h } }

// WithSubprotocols advertises subprotocols during the handshake.
func WithSubprotocols(protos ...string) Option {
	return func(c *config) { c.Subprotocols = protos }
}

// WithReadLimit caps the size of an incoming message (bytes).
func WithReadLimit(bytes int64) Option { return func(c *config) { c.ReadLimit = bytes } }

// WithWriteTimeout sets the per-write deadline (default 5s).
func WithWriteTimeout(d time.Duration) Option { return func(c *config) { c.WriteTimeout = d } }

// WithPingInterval enables a keepalive loop that pings the peer every d.
func WithPingInterval(d time.Duration) Option { return func(c *config) { c.PingInterval = d } }

// WithWriteLimit rate-limits outbound messages to perSecond with the given burst.
func WithWriteLimit(perSecond float64, burst int) Option {
	return func(c *config) {
		c.WriteLimit = rate.Limit(perSecond)
		if burst > 0 {
			c.WriteBurst = burst
		}
	}
}

// WithCodec overrides the codec used by SendEncoded/ReceiveEncoded (JSON by default).
func WithCodec(cd message.Codec) Option { return func(c *config) { c.Codec = cd } }

// WithLogger injects a slog logger.
func WithLogger(l *slog.Logger) Option { return func(c *config) { c.log = l } }

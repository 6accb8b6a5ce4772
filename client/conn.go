package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/throneless-tech/reqwest-websocket/message"
)

// Conn is a client websocket connection.
//
// Writes are serialized internally, so Send, SendJSON, Ping and the
// keepalive loop may run from any goroutine. Receive must be called from a
// single goroutine at a time.
type Conn struct {
	cfg config
	log *slog.Logger
	id  string

	ws      *websocket.Conn
	limiter *rate.Limiter

	writeMu sync.Mutex

	pendMu  sync.Mutex
	pending []*message.Message // control frames observed mid-read

	closeSeen atomic.Bool
	closed    atomic.Bool
	done      chan struct{}
}

// Dial performs the HTTP upgrade handshake against url and returns the
// connection. The url scheme must be ws or wss.
func Dial(ctx context.Context, url string, opts ...Option) (*Conn, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.Default()
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: cfg.HandshakeTimeout,
		TLSClientConfig:  cfg.TLS,
		Subprotocols:     cfg.Subprotocols,
	}
	ws, resp, err := dialer.DialContext(ctx, url, cfg.RequestHeader)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("handshake failed (status %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("handshake failed: %w", err)
	}
	if cfg.ReadLimit > 0 {
		ws.SetReadLimit(cfg.ReadLimit)
	}

	id := uuid.NewString()
	c := &Conn{
		cfg:  cfg,
		log:  cfg.log.With(slog.String("conn_id", id)),
		id:   id,
		ws:   ws,
		done: make(chan struct{}),
	}
	if cfg.WriteLimit > 0 {
		c.limiter = rate.NewLimiter(cfg.WriteLimit, cfg.WriteBurst)
	}

	// Surface control frames as messages. The peer's pings are still
	// answered, as the transport's default handler would.
	ws.SetPingHandler(func(data string) error {
		c.enqueue(message.NewPing([]byte(data)))
		err := c.writeControl(websocket.PongMessage, []byte(data))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})
	ws.SetPongHandler(func(data string) error {
		c.enqueue(message.NewPong([]byte(data)))
		return nil
	})

	if cfg.PingInterval > 0 {
		go c.pingLoop()
	}

	c.log.Debug("connected", slog.String("url", url))
	return c, nil
}

// ID returns the connection's unique identifier, as carried in its log fields.
func (c *Conn) ID() string { return c.id }

// Send writes m to the peer. Text and binary messages become data frames;
// ping, pong and close messages become control frames.
func (c *Conn) Send(ctx context.Context, m *message.Message) error {
	if c.closed.Load() {
		return ErrConnClosed
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("send: %w", err)
		}
	}
	deadline := c.writeDeadline(ctx)

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	switch m.Type {
	case message.TypeText:
		_ = c.ws.SetWriteDeadline(deadline)
		if err := c.ws.WriteMessage(websocket.TextMessage, []byte(m.Text)); err != nil {
			return fmt.Errorf("send text: %w", err)
		}
	case message.TypeBinary:
		_ = c.ws.SetWriteDeadline(deadline)
		if err := c.ws.WriteMessage(websocket.BinaryMessage, m.Data); err != nil {
			return fmt.Errorf("send binary: %w", err)
		}
	case message.TypePing:
		if err := c.ws.WriteControl(websocket.PingMessage, m.Data, deadline); err != nil {
			return fmt.Errorf("send ping: %w", err)
		}
	case message.TypePong:
		if err := c.ws.WriteControl(websocket.PongMessage, m.Data, deadline); err != nil {
			return fmt.Errorf("send pong: %w", err)
		}
	case message.TypeClose:
		payload := websocket.FormatCloseMessage(int(m.Code), m.Reason)
		if err := c.ws.WriteControl(websocket.CloseMessage, payload, deadline); err != nil {
			return fmt.Errorf("send close: %w", err)
		}
	default:
		return fmt.Errorf("send: unknown message type %d", m.Type)
	}
	return nil
}

// SendJSON encodes v as JSON and sends it as a text message.
func (c *Conn) SendJSON(ctx context.Context, v any) error {
	m, err := message.TextFromJSON(v)
	if err != nil {
		return err
	}
	return c.Send(ctx, m)
}

// SendEncoded encodes v with the configured codec and sends it: as a text
// message for JSON, as a binary message otherwise.
func (c *Conn) SendEncoded(ctx context.Context, v any) error {
	m, err := message.EncodeWith(c.cfg.Codec, v)
	if err != nil {
		return err
	}
	return c.Send(ctx, m)
}

// Receive returns the next message from the peer. Control frames observed
// while waiting for a data frame are returned first, in arrival order. A
// close frame from the peer is returned once as a close message; reads
// after that fail.
//
// A deadline on ctx bounds the read. Missing the deadline is fatal to the
// connection, as the transport does not recover from a timed-out read.
func (c *Conn) Receive(ctx context.Context) (*message.Message, error) {
	if m := c.dequeue(); m != nil {
		return m, nil
	}
	if c.closed.Load() {
		return nil, ErrConnClosed
	}

	if d, ok := ctx.Deadline(); ok {
		_ = c.ws.SetReadDeadline(d)
	} else {
		_ = c.ws.SetReadDeadline(time.Time{})
	}

	mt, data, err := c.ws.ReadMessage()
	if err != nil {
		// Control frames queued by the handlers during this read are
		// delivered before the error; the read error repeats on the
		// next call.
		if m := c.dequeue(); m != nil {
			return m, nil
		}
		var ce *websocket.CloseError
		if errors.As(err, &ce) && c.closeSeen.CompareAndSwap(false, true) {
			return message.NewClose(message.CloseCode(ce.Code), ce.Text), nil
		}
		if c.closed.Load() {
			return nil, ErrConnClosed
		}
		return nil, fmt.Errorf("receive: %w", err)
	}

	var m *message.Message
	switch mt {
	case websocket.TextMessage:
		m = message.NewText(string(data))
	case websocket.BinaryMessage:
		m = message.NewBinary(data)
	default:
		return nil, fmt.Errorf("receive: unexpected frame type %d", mt)
	}
	c.enqueue(m)
	return c.dequeue(), nil
}

// ReceiveJSON reads the next message and decodes its body as JSON into v.
// A control message fails with message.ErrNotTextOrBinary.
func (c *Conn) ReceiveJSON(ctx context.Context, v any) error {
	m, err := c.Receive(ctx)
	if err != nil {
		return err
	}
	return m.JSON(v)
}

// ReceiveEncoded reads the next message and decodes its body with the
// configured codec into v.
func (c *Conn) ReceiveEncoded(ctx context.Context, v any) error {
	m, err := c.Receive(ctx)
	if err != nil {
		return err
	}
	return m.DecodeWith(c.cfg.Codec, v)
}

// Ping sends a ping control frame.
func (c *Conn) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return ErrConnClosed
	}
	if err := c.ws.WriteControl(websocket.PingMessage, nil, c.writeDeadline(ctx)); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close sends a normal-closure close frame and tears down the connection.
// Close is idempotent.
func (c *Conn) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(c.done)

	var errs multiErr
	payload := websocket.FormatCloseMessage(int(message.CloseNormalClosure), "")
	err := c.ws.WriteControl(websocket.CloseMessage, payload, c.writeDeadline(ctx))
	if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		errs.add(fmt.Errorf("send close frame: %w", err))
	}
	if err := c.ws.Close(); err != nil {
		errs.add(fmt.Errorf("close connection: %w", err))
	}

	c.log.Debug("closed")
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (c *Conn) writeDeadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.cfg.WriteTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	return deadline
}

func (c *Conn) writeControl(messageType int, data []byte) error {
	return c.ws.WriteControl(messageType, data, time.Now().Add(c.cfg.WriteTimeout))
}

func (c *Conn) pingLoop() {
	t := time.NewTicker(c.cfg.PingInterval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			err := c.writeControl(websocket.PingMessage, nil)
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				c.log.Warn("keepalive ping failed", slog.String("error", err.Error()))
				return
			}
		}
	}
}

func (c *Conn) enqueue(m *message.Message) {
	c.pendMu.Lock()
	c.pending = append(c.pending, m)
	c.pendMu.Unlock()
}

func (c *Conn) dequeue() *message.Message {
	c.pendMu.Lock()
	defer c.pendMu.Unlock()
	if len(c.pending) == 0 {
		return nil
	}
	m := c.pending[0]
	c.pending = c.pending[1:]
	return m
}

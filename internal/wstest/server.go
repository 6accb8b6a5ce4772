// Package wstest provides an embedded websocket server for package tests,
// so tests never depend on an external endpoint.
package wstest

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/websocket"
)

// Server is an httptest.Server that upgrades every request to a websocket
// connection and hands it to a per-connection handler.
type Server struct {
	*httptest.Server
}

// WSURL returns the ws:// address of the server.
func (s *Server) WSURL() string {
	return "ws" + strings.TrimPrefix(s.Server.URL, "http")
}

// New starts a server that runs handler for each accepted connection. The
// connection is closed when the handler returns.
func New(handler func(ws *websocket.Conn)) *Server {
	up := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		handler(ws)
	})
	return &Server{Server: httptest.NewServer(h)}
}

// NewEcho starts a server that echoes every data frame back to the client.
func NewEcho() *Server {
	return New(func(ws *websocket.Conn) {
		for {
			mt, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if err := ws.WriteMessage(mt, data); err != nil {
				return
			}
		}
	})
}

// Package websocket is a client-side WebSocket library with typed message
// conversion.
//
// The library is organized into focused subpackages:
//
//   - github.com/throneless-tech/reqwest-websocket/client   - Dial, Conn and configuration
//   - github.com/throneless-tech/reqwest-websocket/message  - Message variants, JSON adapter and codecs
//
// The root package re-exports the common API so most callers only import it.
//
// Example usage:
//
//	conn, err := websocket.Dial(ctx, "wss://example.com/feed")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer conn.Close(ctx)
//
//	// Sending a typed value as JSON
//	err = conn.SendJSON(ctx, event{Name: "started"})
//
//	// Receiving
//	msg, err := conn.Receive(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	var ev event
//	if err := msg.JSON(&ev); err != nil {
//		log.Fatal(err)
//	}
package websocket

/*
Package chat contains the presence-aware realtime delivery core: the connection
registry, the presence broadcaster, the message router, and the hub that owns them.

This file defines the Transport abstraction that decouples the core from any
specific wire protocol. The production implementation is the WebSocket-backed
SocketTransport (client.go); tests substitute an in-memory fake.
*/
package chat

import "errors"

// Realtime event names pushed to connected clients.
const (
	// EventPresenceUpdate carries the full set of online user ids. It is sent to
	// every registered connection whenever the registry changes.
	EventPresenceUpdate = "presence:update"

	// EventNewMessage carries a persisted message. It is pushed only to the
	// recipient's connection, and only when the recipient is online.
	EventNewMessage = "message:new"
)

// ErrConnectionGone is returned by a Transport when the target connection is no
// longer attached. The core treats it the same as "recipient offline".
var ErrConnectionGone = errors.New("connection is not attached to the transport")

// Envelope is the wire frame for every realtime event sent to a client.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Transport is the per-connection push primitive consumed by the Broadcaster and
// the Router. Send must never block on slow receivers; implementations are
// expected to buffer and drop rather than stall the caller.
type Transport interface {
	Send(connID string, event string, payload any) error
}

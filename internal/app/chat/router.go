/*
Package chat contains the presence-aware realtime delivery core.

This file defines the Router, which delivers a persisted message to the
recipient's live connection when one exists.
*/
package chat

import (
	"github.com/rs/zerolog"

	"dmchat/internal/pkg/logx"
)

// Router resolves a message's recipient against the registry and pushes the
// message to that single connection. Callers must only hand the Router messages
// whose persistence has already been confirmed; the Router itself never touches
// storage and performs no deduplication.
type Router struct {
	registry  *Registry
	transport Transport
	logger    zerolog.Logger
}

// NewRouter constructs a Router over the given registry and transport.
func NewRouter(registry *Registry, transport Transport) *Router {
	return &Router{
		registry:  registry,
		transport: transport,
		logger:    logx.Logger().With().Str("component", "Router").Logger(),
	}
}

// Route pushes msg to the recipient's connection if the recipient is online.
// Exactly one push, to exactly one connection: never the sender, never a
// broadcast. An offline recipient, or a connection that closed between lookup
// and push, is silently skipped. The message stays retrievable through the
// conversation history either way.
func (rt *Router) Route(msg Message) {
	connID, ok := rt.registry.Lookup(msg.ReceiverID)
	if !ok {
		rt.logger.Debug().
			Str("message_id", msg.ID).
			Str("receiver_id", msg.ReceiverID).
			Msg("Recipient offline. Message awaits pull-based catch-up.")
		return
	}

	if err := rt.transport.Send(connID, EventNewMessage, msg); err != nil {
		// Equivalent to "recipient offline": the message is durably saved, so a
		// lost push is not an error.
		rt.logger.Debug().
			Err(err).
			Str("message_id", msg.ID).
			Str("receiver_id", msg.ReceiverID).
			Str("conn_id", connID).
			Msg("Realtime push failed.")
	}
}

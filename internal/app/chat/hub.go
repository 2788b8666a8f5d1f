/*
Package chat contains the presence-aware realtime delivery core.

This file defines the Hub, which owns the Registry, Broadcaster, and Router and
drives the connection lifecycle state machine: a transport connect event
registers the connection and announces presence, a transport disconnect event
removes it (stale disconnects excepted) and announces again.
*/
package chat

import (
	"github.com/rs/zerolog"

	"dmchat/internal/pkg/logx"
)

// Hub is the explicitly constructed owner of the delivery core. It is created
// once at startup, injected into the HTTP and WebSocket handlers, and holds no
// package-level state.
type Hub struct {
	registry    *Registry
	broadcaster *Broadcaster
	router      *Router
	logger      zerolog.Logger
}

// NewHub constructs the Hub and its components over the given transport.
func NewHub(transport Transport) *Hub {
	registry := NewRegistry()

	return &Hub{
		registry:    registry,
		broadcaster: NewBroadcaster(registry, transport),
		router:      NewRouter(registry, transport),
		logger:      logx.Logger().With().Str("component", "Hub").Logger(),
	}
}

// HandleConnect registers an authenticated connection and announces the new
// online set to everyone. A previous connection for the same user is
// superseded, not closed.
func (h *Hub) HandleConnect(userID, connID string) {
	h.registry.Register(userID, connID)

	h.logger.Info().
		Str("user_id", userID).
		Str("conn_id", connID).
		Msg("Connection registered.")

	h.broadcaster.Announce()
}

// HandleDisconnect removes the connection from the registry and announces the
// change. A disconnect for a connection that has already been superseded is a
// defined no-op, never an error: the newer registration stands and no
// announcement is made.
func (h *Hub) HandleDisconnect(userID, connID string) {
	if !h.registry.Unregister(userID, connID) {
		h.logger.Debug().
			Str("user_id", userID).
			Str("conn_id", connID).
			Msg("Ignoring disconnect for stale or unknown connection.")
		return
	}

	h.logger.Info().
		Str("user_id", userID).
		Str("conn_id", connID).
		Msg("Connection unregistered.")

	h.broadcaster.Announce()
}

// Route delivers an already persisted message to its recipient, if online.
func (h *Hub) Route(msg Message) {
	h.router.Route(msg)
}

// Lookup reports the live connection id registered for userID, if any.
func (h *Hub) Lookup(userID string) (string, bool) {
	return h.registry.Lookup(userID)
}

// Online returns the current set of online user ids.
func (h *Hub) Online() []string {
	return h.registry.Snapshot()
}

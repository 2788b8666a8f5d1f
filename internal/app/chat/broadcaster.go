/*
Package chat contains the presence-aware realtime delivery core.

This file defines the Broadcaster, which keeps every connected client's
online-user list synchronized with the registry.
*/
package chat

import (
	"github.com/rs/zerolog"

	"dmchat/internal/pkg/logx"
)

// Broadcaster pushes the current online-user set to every registered connection
// whenever the registry changes. Presence is best-effort, eventually-consistent
// state: delivery failure to one connection never prevents delivery to the
// others, and the next registry change self-corrects any missed update.
type Broadcaster struct {
	registry  *Registry
	transport Transport
	logger    zerolog.Logger
}

// NewBroadcaster constructs a Broadcaster over the given registry and transport.
func NewBroadcaster(registry *Registry, transport Transport) *Broadcaster {
	return &Broadcaster{
		registry:  registry,
		transport: transport,
		logger:    logx.Logger().With().Str("component", "Broadcaster").Logger(),
	}
}

// Announce computes the online snapshot and sends a presence update to every
// registered connection, including the one whose change triggered it. Failed
// sends are logged and skipped; there is no acknowledgment or retry.
func (b *Broadcaster) Announce() {
	conns := b.registry.connections()

	online := make([]string, 0, len(conns))
	for userID := range conns {
		online = append(online, userID)
	}

	for userID, connID := range conns {
		if err := b.transport.Send(connID, EventPresenceUpdate, online); err != nil {
			b.logger.Debug().
				Err(err).
				Str("user_id", userID).
				Str("conn_id", connID).
				Msg("Presence update not delivered.")
		}
	}
}

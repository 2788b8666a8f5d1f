/*
Package chat contains the presence-aware realtime delivery core.

This file defines the Registry, the single piece of shared mutable state in the
core: the map from an authenticated user id to their one live connection id.
*/
package chat

import "sync"

// Registry maps a user id to the id of their single live realtime connection.
//
// A user with multiple simultaneous connections is represented by the most
// recent one only; registering replaces the previous mapping wholesale. The
// mutex is held only for the duration of a map access, never across I/O.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]string),
	}
}

// Register inserts or replaces the connection mapping for userID. It always
// succeeds. A previously registered connection for the same user is evicted
// from the map but not closed; its delayed disconnect becomes a no-op in
// Unregister.
func (r *Registry) Register(userID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[userID] = connID
}

// Unregister removes the mapping for userID only if the currently stored
// connection id equals connID, and reports whether a removal happened.
//
// The guard is what survives the rapid-reconnect race: when a new connection
// has already replaced the old one, the old connection's delayed disconnect
// must not evict the new registration.
func (r *Registry) Unregister(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.conns[userID]
	if !ok || current != connID {
		return false
	}

	delete(r.conns, userID)
	return true
}

// Lookup returns the live connection id for userID, if any.
func (r *Registry) Lookup(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connID, ok := r.conns[userID]
	return connID, ok
}

// Snapshot returns the set of currently online user ids. Order is not
// meaningful.
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	online := make([]string, 0, len(r.conns))
	for userID := range r.conns {
		online = append(online, userID)
	}
	return online
}

// connections returns a copy of the full userID -> connID mapping, taken under
// a single lock acquisition so the broadcaster sees one consistent view.
func (r *Registry) connections() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[string]string, len(r.conns))
	for userID, connID := range r.conns {
		copied[userID] = connID
	}
	return copied
}

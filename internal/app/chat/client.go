/*
Package chat contains the presence-aware realtime delivery core.

This file defines the WebSocket adapter: the Client struct representing one live
connection with its read/write pumps, and the SocketTransport that implements
the Transport interface over attached clients.
*/
package chat

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"dmchat/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a frame sent by the client. Clients
	// send messages over HTTP; inbound WebSocket traffic is control-only.
	maxInboundSize = 512

	// capacity of the per-connection outbound queue.
	sendQueueSize = 256
)

// SocketTransport implements Transport over live WebSocket clients, keyed by
// connection id. It is safe for concurrent use.
type SocketTransport struct {
	mu    sync.RWMutex
	conns map[string]*Client
}

// NewSocketTransport returns an empty SocketTransport.
func NewSocketTransport() *SocketTransport {
	return &SocketTransport{
		conns: make(map[string]*Client),
	}
}

// Send queues an event for the given connection. It never blocks: a full queue
// or a detached connection yields an error that callers treat as a lost push.
func (t *SocketTransport) Send(connID string, event string, payload any) error {
	t.mu.RLock()
	client, ok := t.conns[connID]
	t.mu.RUnlock()

	if !ok {
		return ErrConnectionGone
	}

	return client.enqueue(Envelope{Event: event, Payload: payload})
}

// Attach makes the client reachable through Send.
func (t *SocketTransport) Attach(client *Client) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conns[client.connID] = client
}

// Detach removes the connection from the transport. Subsequent sends to it
// return ErrConnectionGone.
func (t *SocketTransport) Detach(connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.conns, connID)
}

// Client represents one live WebSocket connection bound to an authenticated
// user. Its lifetime spans exactly one Unauthenticated -> Connected ->
// Disconnected pass through the hub's state machine.
type Client struct {
	hub       *Hub
	transport *SocketTransport

	// underlying WebSocket connection object.
	conn *websocket.Conn

	// userID is the pre-validated identity supplied at handshake time.
	userID string

	// connID is the transport-assigned identifier for this connection instance.
	connID string

	// a buffered channel used to queue outbound frames.
	send chan []byte

	closeOnce sync.Once

	// structured logger with connection context.
	logger zerolog.Logger
}

// NewClient constructs a Client for an upgraded connection and assigns it a
// fresh connection id.
func NewClient(hub *Hub, transport *SocketTransport, wsConn *websocket.Conn, userID string) *Client {
	connID := uuid.New().String()

	clientLogger := logx.Logger().With().
		Str("user_id", userID).
		Str("conn_id", connID).
		Logger()

	return &Client{
		hub:       hub,
		transport: transport,
		conn:      wsConn,
		userID:    userID,
		connID:    connID,
		send:      make(chan []byte, sendQueueSize),
		logger:    clientLogger,
	}
}

// UserID returns the user id this connection is bound to.
func (c *Client) UserID() string { return c.userID }

// ConnID returns the transport-assigned connection id.
func (c *Client) ConnID() string { return c.connID }

// Start attaches the client to the transport, registers it with the hub, and
// launches the write pump. The caller then blocks on ReadPump.
func (c *Client) Start() {
	c.transport.Attach(c)

	go c.WritePump()

	c.hub.HandleConnect(c.userID, c.connID)
}

// ReadPump consumes the WebSocket connection until it closes. It handles
// heartbeats (Pong) and performs cleanup when the connection drops, whether
// gracefully or not.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxInboundSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// Messages are sent over the HTTP API; inbound frames are drained and
		// ignored so the connection stays pull-free.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Connection read ended (client close/going away)")
			}
			break
		}
	}
}

// cleanupOnDisconnect drives the Connected -> Disconnected transition. No
// distinction is made between abnormal and graceful disconnects.
func (c *Client) cleanupOnDisconnect() {
	c.logger.Info().Msg("Connection cleanup starting.")

	c.hub.HandleDisconnect(c.userID, c.connID)

	c.transport.Detach(c.connID)

	c.closeSendQueue()

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Connection close error")
	}
}

// closeSendQueue closes the send channel exactly once, unblocking WritePump.
func (c *Client) closeSendQueue() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// enqueue marshals the envelope and attempts to queue it for delivery. A full
// queue drops the frame rather than blocking the sender.
func (c *Client) enqueue(env Envelope) (err error) {
	frame, marshalErr := json.Marshal(env)
	if marshalErr != nil {
		c.logger.Error().Err(marshalErr).Str("event", env.Event).Msg("Error marshaling event for client")
		return marshalErr
	}

	defer func() {
		// A concurrently closed send channel surfaces as a panic; report it as a
		// lost push instead.
		if r := recover(); r != nil {
			err = ErrConnectionGone
		}
	}()

	select {
	case c.send <- frame:
		return nil
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Str("event", env.Event).Msg("Send queue full, dropping event")
		return fmt.Errorf("client send queue full")
	}
}

// WritePump writes queued frames to the WebSocket connection and maintains the
// ping heartbeat. It exits when the send queue closes or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !c.writeQueuedFrame(frame, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePingMessage() {
				return
			}
		}
	}
}

// writeQueuedFrame handles frames pulled from the send channel, writing them to
// the WebSocket. Returns true if the WritePump loop should continue.
func (c *Client) writeQueuedFrame(frame []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Debug().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.logger.Error().Err(err).Msg("Error writing frame")
		return false
	}

	return true
}

// writePingMessage sends a periodic WebSocket Ping message to maintain the
// connection heartbeat. Returns false if the WritePump loop should terminate.
func (c *Client) writePingMessage() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Debug().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}

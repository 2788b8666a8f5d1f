package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"dmchat/internal/app/chat"
	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/limiter"
)

func TestHandleWebSocketRejectsMissingUserID(t *testing.T) {
	env := newTestEnv()

	upgrader := &websocket.Upgrader{}
	rateLimiter := limiter.NewIPRateLimiter(rate.Limit(100), 100)

	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	HandleWebSocket(upgrader, rateLimiter, env.deps)(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 before upgrade, got %d", rec.Code)
	}
	if out := decodeResponse(t, rec); out.Code != errs.ErrInvalidParams {
		t.Fatalf("expected code %d, got %d", errs.ErrInvalidParams, out.Code)
	}
}

// newWebSocketEnv wires the handlers over a real SocketTransport so pushes
// travel down actual WebSocket connections.
func newWebSocketEnv() *testEnv {
	env := newTestEnv()

	transport := chat.NewSocketTransport()
	env.deps.Transport = transport
	env.deps.Hub = chat.NewHub(transport)

	return env
}

func dialWebSocket(t *testing.T, serverURL, userID string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?userId=" + userID

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", wsURL, err)
	}
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) chat.Envelope {
	t.Helper()

	if err := conn.SetReadDeadline(time.Now().Add(3 * time.Second)); err != nil {
		t.Fatalf("failed to set read deadline: %v", err)
	}

	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}

	var env chat.Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		t.Fatalf("failed to decode envelope %s: %v", frame, err)
	}
	return env
}

func TestWebSocketPresenceOnConnect(t *testing.T) {
	env := newWebSocketEnv()

	ts := httptest.NewServer(Router(env.deps))
	defer ts.Close()

	conn := dialWebSocket(t, ts.URL, "alice")
	defer conn.Close()

	envelope := readEnvelope(t, conn)
	if envelope.Event != chat.EventPresenceUpdate {
		t.Fatalf("expected first frame to be %s, got %s", chat.EventPresenceUpdate, envelope.Event)
	}

	online, ok := envelope.Payload.([]any)
	if !ok {
		t.Fatalf("expected presence payload to be a list, got %T", envelope.Payload)
	}
	if len(online) != 1 || online[0] != "alice" {
		t.Fatalf("expected online set [alice], got %v", online)
	}
}

func TestWebSocketMessageDelivery(t *testing.T) {
	env := newWebSocketEnv()
	env.store.addUser(t, receiverID, "Bob", "bob@example.com")

	ts := httptest.NewServer(Router(env.deps))
	defer ts.Close()

	// Bob comes online over a real socket.
	bobConn := dialWebSocket(t, ts.URL, receiverID)
	defer bobConn.Close()

	if envelope := readEnvelope(t, bobConn); envelope.Event != chat.EventPresenceUpdate {
		t.Fatalf("expected presence frame first, got %s", envelope.Event)
	}

	// Alice registers over HTTP and keeps her session cookie.
	registerBody := `{"fullName":"Alice Example","email":"alice@example.com","password":"correct-horse"}`
	registerResp, err := http.Post(ts.URL+"/api/auth/register", "application/json", strings.NewReader(registerBody))
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer registerResp.Body.Close()

	if registerResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected register to return 201, got %d", registerResp.StatusCode)
	}

	sendReq, err := http.NewRequest(http.MethodPost, ts.URL+"/api/message/send/"+receiverID,
		strings.NewReader(`{"text":"hello over the wire"}`))
	if err != nil {
		t.Fatalf("failed to build send request: %v", err)
	}
	sendReq.Header.Set("Content-Type", "application/json")
	for _, c := range registerResp.Cookies() {
		sendReq.AddCookie(c)
	}

	sendResp, err := http.DefaultClient.Do(sendReq)
	if err != nil {
		t.Fatalf("send request failed: %v", err)
	}
	defer sendResp.Body.Close()

	if sendResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected send to return 201, got %d", sendResp.StatusCode)
	}

	// Bob's socket receives exactly the persisted message.
	envelope := readEnvelope(t, bobConn)
	if envelope.Event != chat.EventNewMessage {
		t.Fatalf("expected %s frame, got %s", chat.EventNewMessage, envelope.Event)
	}

	payload, ok := envelope.Payload.(map[string]any)
	if !ok {
		t.Fatalf("expected message payload object, got %T", envelope.Payload)
	}
	if payload["text"] != "hello over the wire" {
		t.Fatalf("expected pushed text to match sent text, got %v", payload["text"])
	}
	if payload["receiverId"] != receiverID {
		t.Fatalf("expected receiverId %s, got %v", receiverID, payload["receiverId"])
	}
	if payload["id"] == "" || payload["id"] == nil {
		t.Fatal("expected pushed message to carry its persisted id")
	}
}

func TestWebSocketDisconnectUpdatesPresence(t *testing.T) {
	env := newWebSocketEnv()

	ts := httptest.NewServer(Router(env.deps))
	defer ts.Close()

	aliceConn := dialWebSocket(t, ts.URL, "alice")
	defer aliceConn.Close()

	if envelope := readEnvelope(t, aliceConn); envelope.Event != chat.EventPresenceUpdate {
		t.Fatalf("expected presence frame, got %s", envelope.Event)
	}

	bobConn := dialWebSocket(t, ts.URL, "bob")

	// Alice sees bob arrive.
	envelope := readEnvelope(t, aliceConn)
	online, _ := envelope.Payload.([]any)
	if len(online) != 2 {
		t.Fatalf("expected two users online, got %v", online)
	}

	bobConn.Close()

	// And sees him leave.
	envelope = readEnvelope(t, aliceConn)
	if envelope.Event != chat.EventPresenceUpdate {
		t.Fatalf("expected presence frame after disconnect, got %s", envelope.Event)
	}
	online, _ = envelope.Payload.([]any)
	if len(online) != 1 || online[0] != "alice" {
		t.Fatalf("expected only alice online after bob left, got %v", online)
	}
}

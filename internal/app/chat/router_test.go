package chat

import "testing"

func TestRouteOfflineRecipientSendsNothing(t *testing.T) {
	registry := NewRegistry()
	transport := newFakeTransport()
	router := NewRouter(registry, transport)

	router.Route(Message{ID: "m-1", SenderID: "alice", ReceiverID: "bob", Text: "hi"})

	if n := transport.countAll(); n != 0 {
		t.Fatalf("expected no pushes for an offline recipient, got %d", n)
	}
}

func TestRouteDeliversOnlyToRecipient(t *testing.T) {
	registry := NewRegistry()
	transport := newFakeTransport()
	router := NewRouter(registry, transport)

	registry.Register("alice", "conn-a")
	registry.Register("bob", "conn-b")

	router.Route(Message{ID: "m-1", SenderID: "alice", ReceiverID: "bob", Text: "hi"})

	if got := transport.framesFor("conn-a", EventNewMessage); len(got) != 0 {
		t.Fatalf("expected no push to the sender's connection, got %d", len(got))
	}

	got := transport.framesFor("conn-b", EventNewMessage)
	if len(got) != 1 {
		t.Fatalf("expected exactly one push to the recipient, got %d", len(got))
	}

	pushed, ok := got[0].payload.(Message)
	if !ok {
		t.Fatalf("expected payload of type Message, got %T", got[0].payload)
	}
	if pushed.ID != "m-1" || pushed.SenderID != "alice" || pushed.Text != "hi" {
		t.Fatalf("pushed message does not match routed message: %#v", pushed)
	}
}

func TestRouteEachMessageOnce(t *testing.T) {
	registry := NewRegistry()
	transport := newFakeTransport()
	router := NewRouter(registry, transport)

	registry.Register("bob", "conn-b")

	router.Route(Message{ID: "m-1", SenderID: "alice", ReceiverID: "bob", Text: "first"})
	router.Route(Message{ID: "m-2", SenderID: "alice", ReceiverID: "bob", Text: "second"})

	got := transport.framesFor("conn-b", EventNewMessage)
	if len(got) != 2 {
		t.Fatalf("expected two pushes for two routed messages, got %d", len(got))
	}
}

func TestRouteSendFailureIsSwallowed(t *testing.T) {
	registry := NewRegistry()
	transport := newFakeTransport()
	router := NewRouter(registry, transport)

	registry.Register("bob", "conn-b")
	transport.broken["conn-b"] = true

	// The connection died between lookup and push. Route must treat this like
	// an offline recipient, not an error.
	router.Route(Message{ID: "m-1", SenderID: "alice", ReceiverID: "bob", Text: "hi"})

	if n := transport.countAll(); n != 0 {
		t.Fatalf("expected no recorded frames after a failed push, got %d", n)
	}
}

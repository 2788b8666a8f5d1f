package chat

import "testing"

func TestRegistryLookupUnknownUser(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Lookup("nobody"); ok {
		t.Fatal("expected lookup of unknown user to report not found")
	}
}

func TestRegistryRegisterAndUnregister(t *testing.T) {
	r := NewRegistry()

	r.Register("alice", "conn-1")

	connID, ok := r.Lookup("alice")
	if !ok || connID != "conn-1" {
		t.Fatalf("expected alice mapped to conn-1, got %q (found=%v)", connID, ok)
	}

	if !r.Unregister("alice", "conn-1") {
		t.Fatal("expected unregister of current connection to report removal")
	}

	if _, ok := r.Lookup("alice"); ok {
		t.Fatal("expected alice to be offline after unregister")
	}
}

func TestRegistryReconnectSupersedesOldConnection(t *testing.T) {
	r := NewRegistry()

	r.Register("alice", "conn-old")
	r.Register("alice", "conn-new")

	connID, ok := r.Lookup("alice")
	if !ok || connID != "conn-new" {
		t.Fatalf("expected newest connection to win, got %q", connID)
	}

	// The superseded connection's delayed disconnect must not evict the new one.
	if r.Unregister("alice", "conn-old") {
		t.Fatal("expected unregister of superseded connection to be a no-op")
	}

	connID, ok = r.Lookup("alice")
	if !ok || connID != "conn-new" {
		t.Fatalf("expected conn-new to survive stale unregister, got %q (found=%v)", connID, ok)
	}

	if !r.Unregister("alice", "conn-new") {
		t.Fatal("expected unregister of current connection to report removal")
	}
}

func TestRegistryUnregisterUnknownUser(t *testing.T) {
	r := NewRegistry()

	if r.Unregister("ghost", "conn-1") {
		t.Fatal("expected unregister of unknown user to be a no-op")
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()

	users := []string{"alice", "bob", "carol"}
	for i, u := range users {
		r.Register(u, "conn-"+string(rune('a'+i)))
	}

	online := r.Snapshot()
	if len(online) != len(users) {
		t.Fatalf("expected %d online users, got %d", len(users), len(online))
	}

	seen := make(map[string]bool)
	for _, u := range online {
		seen[u] = true
	}
	for _, u := range users {
		if !seen[u] {
			t.Fatalf("expected %q in snapshot, got %v", u, online)
		}
	}
}

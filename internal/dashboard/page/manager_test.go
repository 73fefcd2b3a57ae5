package page

import (
	"testing"
	"time"
)

func testManager(ttl time.Duration) *Manager {
	return NewManager(ttl, func() *Page {
		return newPage(seededStore())
	})
}

func TestManagerMintsAndReusesSessions(t *testing.T) {
	m := testManager(time.Minute)

	p1, id := m.Get("")
	if id == "" {
		t.Fatal("Get(\"\") returned an empty session ID")
	}
	if p1 == nil {
		t.Fatal("Get(\"\") returned a nil page")
	}

	p2, id2 := m.Get(id)
	if id2 != id {
		t.Errorf("Get(%q) minted a new ID %q", id, id2)
	}
	if p2 != p1 {
		t.Error("same session got a different page")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestManagerUnknownIDCreatesSessionUnderThatID(t *testing.T) {
	m := testManager(time.Minute)

	p, id := m.Get("client-chosen")
	if id != "client-chosen" {
		t.Errorf("id = %q, want the caller's ID kept", id)
	}
	if p == nil {
		t.Fatal("nil page for a new session")
	}

	again, _ := m.Get("client-chosen")
	if again != p {
		t.Error("second Get did not reuse the session")
	}
}

func TestManagerPurgesIdleSessions(t *testing.T) {
	m := testManager(time.Minute)

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Get("stale")
	now = now.Add(30 * time.Second)
	m.Get("fresh")

	now = now.Add(45 * time.Second)
	if remaining := m.Purge(); remaining != 1 {
		t.Errorf("Purge() = %d remaining, want 1", remaining)
	}

	// The surviving session keeps its page.
	if _, id := m.Get("fresh"); id != "fresh" {
		t.Error("fresh session was purged")
	}

	// Touching a session resets its idle clock.
	m.Get("fresh")
	now = now.Add(59 * time.Second)
	if remaining := m.Purge(); remaining != 1 {
		t.Errorf("Purge() after touch = %d remaining, want 1", remaining)
	}
}

package main

import (
	"testing"
	"time"

	"bagisadmin/internal/auth"
	"bagisadmin/internal/ui"
)

func TestSessionForwarderDeliversInOrder(t *testing.T) {
	got := make(chan ui.SessionMsg, 8)
	notify, stop := newSessionForwarder(func(msg ui.SessionMsg) {
		got <- msg
	})
	defer stop()

	notify(auth.State{Kind: auth.StateAuthenticating})
	notify(auth.State{Kind: auth.StateAuthenticated, Session: &auth.Session{UID: "op-1"}})

	for _, want := range []auth.StateKind{auth.StateAuthenticating, auth.StateAuthenticated} {
		select {
		case msg := <-got:
			if msg.State.Kind != want {
				t.Fatalf("got state %v, want %v", msg.State.Kind, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for state %v", want)
		}
	}
}

func TestSessionForwarderSafeAfterStop(t *testing.T) {
	notify, stop := newSessionForwarder(func(ui.SessionMsg) {})
	stop()
	stop()

	// A gate callback snapshotted before unsubscribe may still fire during
	// teardown; it must be dropped, not panic or block.
	delivered := make(chan struct{})
	go func() {
		notify(auth.State{Kind: auth.StateUnauthenticated})
		close(delivered)
	}()
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("notify blocked after stop")
	}
}

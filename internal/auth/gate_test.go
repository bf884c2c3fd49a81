package auth

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider drives the gate manually from tests.
type fakeProvider struct {
	onChange   func(*Session)
	signOutErr error
	signedOut  bool
}

func (f *fakeProvider) SignIn(_ context.Context, _, _ string) (*Session, error) {
	return nil, nil
}

func (f *fakeProvider) SignOut(_ context.Context) error {
	f.signedOut = true
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.onChange(nil)
	return nil
}

func (f *fakeProvider) Subscribe(onChange func(*Session)) func() {
	f.onChange = onChange
	return func() { f.onChange = nil }
}

func TestGateStartsAuthenticatingUntilFirstNotification(t *testing.T) {
	provider := &fakeProvider{}
	gate := NewGate(provider)
	defer gate.Close()

	if got := gate.State().Kind; got != StateAuthenticating {
		t.Fatalf("initial state = %v, want StateAuthenticating", got)
	}

	provider.onChange(nil)
	if got := gate.State().Kind; got != StateUnauthenticated {
		t.Fatalf("state after nil session = %v, want StateUnauthenticated", got)
	}

	provider.onChange(&Session{UID: "u1", Email: "admin@example.com"})
	state := gate.State()
	if state.Kind != StateAuthenticated {
		t.Fatalf("state after session = %v, want StateAuthenticated", state.Kind)
	}
	if state.Session == nil || state.Session.UID != "u1" {
		t.Fatalf("session not carried: %#v", state.Session)
	}
}

func TestGateSignOutGoesThroughProviderNotification(t *testing.T) {
	provider := &fakeProvider{}
	gate := NewGate(provider)
	defer gate.Close()

	provider.onChange(&Session{UID: "u1"})
	if err := gate.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if !provider.signedOut {
		t.Fatalf("provider sign-out not requested")
	}
	if got := gate.State().Kind; got != StateUnauthenticated {
		t.Fatalf("state after sign-out = %v, want StateUnauthenticated", got)
	}
}

func TestGateSignOutFailureKeepsSession(t *testing.T) {
	provider := &fakeProvider{signOutErr: errors.New("network down")}
	gate := NewGate(provider)
	defer gate.Close()

	provider.onChange(&Session{UID: "u1"})
	if err := gate.SignOut(context.Background()); err == nil {
		t.Fatalf("expected sign-out error")
	}

	state := gate.State()
	if state.Kind != StateError {
		t.Fatalf("state = %v, want StateError", state.Kind)
	}
	if state.Session == nil || state.Session.UID != "u1" {
		t.Fatalf("failed sign-out must not drop the session: %#v", state.Session)
	}
}

func TestGateSubscribeDeliversCurrentStateAndUpdates(t *testing.T) {
	provider := &fakeProvider{}
	gate := NewGate(provider)
	defer gate.Close()

	var seen []StateKind
	unsub := gate.Subscribe(func(s State) { seen = append(seen, s.Kind) })

	provider.onChange(&Session{UID: "u1"})
	unsub()
	provider.onChange(nil)

	want := []StateKind{StateAuthenticating, StateAuthenticated}
	if len(seen) != len(want) {
		t.Fatalf("observed states = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("observed states = %v, want %v", seen, want)
		}
	}
}

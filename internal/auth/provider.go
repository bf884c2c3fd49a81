// Package auth wraps the external authentication provider behind a session
// state machine the rest of the console can observe.
package auth

import (
	"context"
	"time"
)

// Session is the authenticated identity issued by the provider.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Provider is the external authentication service. Subscribe registers a
// session-change listener and returns its teardown; implementations deliver
// the current session (possibly nil) to a new listener promptly so observers
// leave their initial state.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	Subscribe(onChange func(*Session)) (unsubscribe func())
}

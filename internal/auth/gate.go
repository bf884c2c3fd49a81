package auth

import (
	"context"
	"sync"
)

// StateKind enumerates the session states the console distinguishes.
type StateKind int

const (
	// StateAuthenticating holds from construction until the provider's first
	// session notification arrives.
	StateAuthenticating StateKind = iota
	StateAuthenticated
	StateUnauthenticated
	// StateError carries a failed provider action. The session the provider
	// last reported is retained unchanged.
	StateError
)

// State is the gate's current session state.
type State struct {
	Kind    StateKind
	Session *Session
	Err     error
}

// Authenticated reports whether the state carries a live session.
func (s State) Authenticated() bool {
	return s.Kind == StateAuthenticated
}

// Gate owns a single subscription to the provider and resolves its
// notifications into a State observers can read or subscribe to.
type Gate struct {
	provider Provider

	mu       sync.Mutex
	state    State
	watchers map[int]func(State)
	nextID   int
	unsub    func()
}

// NewGate subscribes to the provider and starts in StateAuthenticating.
func NewGate(provider Provider) *Gate {
	g := &Gate{
		provider: provider,
		state:    State{Kind: StateAuthenticating},
		watchers: make(map[int]func(State)),
	}
	g.unsub = provider.Subscribe(g.onSessionChange)
	return g
}

// State returns the current session state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Subscribe registers a state observer and returns its teardown. The current
// state is delivered immediately.
func (g *Gate) Subscribe(fn func(State)) (unsubscribe func()) {
	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.watchers[id] = fn
	current := g.state
	g.mu.Unlock()

	fn(current)
	return func() {
		g.mu.Lock()
		delete(g.watchers, id)
		g.mu.Unlock()
	}
}

// SignIn asks the provider for a session. A successful sign-in reaches the
// gate through the provider's own session notification, not directly here.
func (g *Gate) SignIn(ctx context.Context, email, password string) error {
	_, err := g.provider.SignIn(ctx, email, password)
	return err
}

// SignOut requests provider sign-out. On failure the gate reports StateError
// while keeping the last reported session; the session state only changes
// when the provider itself notifies. No retry is attempted.
func (g *Gate) SignOut(ctx context.Context) error {
	if err := g.provider.SignOut(ctx); err != nil {
		g.mu.Lock()
		g.state = State{Kind: StateError, Session: g.state.Session, Err: err}
		state := g.state
		watchers := g.snapshotWatchers()
		g.mu.Unlock()
		notify(watchers, state)
		return err
	}
	return nil
}

// Close tears down the provider subscription.
func (g *Gate) Close() {
	if g.unsub != nil {
		g.unsub()
		g.unsub = nil
	}
}

func (g *Gate) onSessionChange(session *Session) {
	g.mu.Lock()
	if session != nil {
		g.state = State{Kind: StateAuthenticated, Session: session}
	} else {
		g.state = State{Kind: StateUnauthenticated}
	}
	state := g.state
	watchers := g.snapshotWatchers()
	g.mu.Unlock()
	notify(watchers, state)
}

func (g *Gate) snapshotWatchers() []func(State) {
	out := make([]func(State), 0, len(g.watchers))
	for _, fn := range g.watchers {
		out = append(out, fn)
	}
	return out
}

func notify(watchers []func(State), state State) {
	for _, fn := range watchers {
		fn(state)
	}
}

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bagisadmin/internal/domain"
)

// DevProvider is a local stand-in for the hosted identity service, used when
// no API key is configured. Any non-empty email and password pair signs in.
// It exists for development against the in-memory store only.
type DevProvider struct {
	mu          sync.Mutex
	session     *Session
	subscribers map[int]func(*Session)
	nextSub     int
}

func NewDevProvider() *DevProvider {
	return &DevProvider{subscribers: map[int]func(*Session){}}
}

func (p *DevProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredential
	}
	session := &Session{
		UID:       uuid.NewString(),
		Email:     email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	p.mu.Lock()
	p.session = session
	subs := make([]func(*Session), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.mu.Unlock()
	for _, fn := range subs {
		fn(session)
	}
	return session, nil
}

func (p *DevProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.session = nil
	subs := make([]func(*Session), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.mu.Unlock()
	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

func (p *DevProvider) Subscribe(onChange func(*Session)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = onChange
	current := p.session
	p.mu.Unlock()

	onChange(current)

	return func() {
		p.mu.Lock()
		delete(p.subscribers, id)
		p.mu.Unlock()
	}
}

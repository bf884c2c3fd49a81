package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"bagisadmin/internal/domain"
)

// ErrMissingAPIKey indicates the client was configured without credentials.
var ErrMissingAPIKey = errors.New("auth: api key is required")

// RESTOptions configures the identity-toolkit REST provider.
type RESTOptions struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	Logger         zerolog.Logger
	RequestTimeout time.Duration
}

// RESTProvider implements Provider against an identity-toolkit style HTTP
// endpoint (email/password sign-in). The session lives in process memory
// only; sign-out drops it locally and notifies subscribers.
type RESTProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu        sync.Mutex
	session   *Session
	listeners map[int]func(*Session)
	nextID    int
}

// NewRESTProvider creates the provider. BaseURL defaults to the Google
// identity-toolkit endpoint.
func NewRESTProvider(opts RESTOptions) (*RESTProvider, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = "https://identitytoolkit.googleapis.com"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.RequestTimeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &RESTProvider{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		httpClient: client,
		logger:     opts.Logger,
		listeners:  make(map[int]func(*Session)),
	}, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *RESTProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("encode sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", p.baseURL, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in: %w: %v", domain.ErrAuthUnknown, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		p.logger.Warn().Str("code", body.Error.Message).Msg("sign-in rejected")
		return nil, mapSignInError(body.Error.Message)
	}

	var body signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode sign-in response: %w: %v", domain.ErrAuthUnknown, err)
	}

	session := &Session{
		UID:          body.LocalID,
		Email:        body.Email,
		IDToken:      body.IDToken,
		RefreshToken: body.RefreshToken,
	}
	if secs, err := strconv.Atoi(body.ExpiresIn); err == nil {
		session.ExpiresAt = time.Now().Add(time.Duration(secs) * time.Second)
	}

	p.mu.Lock()
	p.session = session
	listeners := p.snapshotListeners()
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(session)
	}
	return session, nil
}

// SignOut drops the in-memory session and notifies subscribers with nil.
func (p *RESTProvider) SignOut(_ context.Context) error {
	p.mu.Lock()
	p.session = nil
	listeners := p.snapshotListeners()
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(nil)
	}
	return nil
}

// Subscribe registers a session listener and immediately delivers the
// current session so new observers settle out of their initial state.
func (p *RESTProvider) Subscribe(onChange func(*Session)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = onChange
	current := p.session
	p.mu.Unlock()

	onChange(current)
	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *RESTProvider) snapshotListeners() []func(*Session) {
	out := make([]func(*Session), 0, len(p.listeners))
	for _, fn := range p.listeners {
		out = append(out, fn)
	}
	return out
}

func mapSignInError(code string) error {
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
		return fmt.Errorf("%s: %w", code, domain.ErrInvalidCredential)
	case "INVALID_EMAIL":
		return fmt.Errorf("%s: %w", code, domain.ErrInvalidEmail)
	default:
		if code == "" {
			code = "UNKNOWN"
		}
		return fmt.Errorf("%s: %w", code, domain.ErrAuthUnknown)
	}
}

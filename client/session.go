package client

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// StateKind is the authentication state a frontend renders from.
type StateKind string

const (
	// StateLoading means a stored token is being re-verified; render a
	// spinner, not a login form.
	StateLoading StateKind = "loading"
	// StateAuthenticated means a session is active.
	StateAuthenticated StateKind = "authenticated"
	// StateAnonymous means no session; render the login forms.
	StateAnonymous StateKind = "anonymous"
)

// State is a snapshot of the session. Claims is nil unless Kind is
// StateAuthenticated.
type State struct {
	Kind   StateKind
	Claims *TokenClaims
}

// Session drives the client-side authentication lifecycle: boot-time
// re-verification of a stored token, trust-the-fresh-token logins and
// local logout.
type Session struct {
	api   *Client
	store TokenStore

	mu    sync.Mutex
	state State
}

// NewSession creates a Session in the loading state. Call Boot to resolve it.
func NewSession(api *Client, store TokenStore) *Session {
	return &Session{
		api:   api,
		store: store,
		state: State{Kind: StateLoading},
	}
}

// State returns the current session snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Token returns the active session token, or "" when anonymous.
func (s *Session) Token() string {
	token, err := s.store.Load()
	if err != nil {
		return ""
	}

	return token
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Boot resolves the initial state. A stored token is never trusted
// blindly: it is re-verified against the server, and cleared locally
// on any failure to confirm it.
func (s *Session) Boot(ctx context.Context) (State, error) {
	s.setState(State{Kind: StateLoading})

	token, err := s.store.Load()
	if err != nil {
		return State{}, errors.Wrap(err, "failed to load stored token")
	}
	if token == "" {
		state := State{Kind: StateAnonymous}
		s.setState(state)

		return state, nil
	}

	claims, err := s.api.VerifyToken(ctx, token)
	if err != nil {
		// Rejected or unreachable, either way the stored token could not
		// be confirmed. Drop it and start anonymous; a re-login mints a
		// fresh one.
		if clearErr := s.store.Clear(); clearErr != nil {
			return State{}, errors.Wrap(clearErr, "failed to clear stored token")
		}
		state := State{Kind: StateAnonymous}
		s.setState(state)

		return state, nil
	}

	state := State{Kind: StateAuthenticated, Claims: claims}
	s.setState(state)

	return state, nil
}

// acceptFreshToken stores a token the server just issued and derives the
// authenticated state from the token's own claims. No verification round
// trip: the token is seconds old and came straight from the issuer.
func (s *Session) acceptFreshToken(token string) (State, error) {
	claims, err := decodeClaims(token)
	if err != nil {
		return State{}, err
	}

	if err := s.store.Save(token); err != nil {
		return State{}, errors.Wrap(err, "failed to store token")
	}

	state := State{Kind: StateAuthenticated, Claims: claims}
	s.setState(state)

	return state, nil
}

// decodeClaims reads the identity claims out of a token without checking
// its signature. Only ever used on tokens freshly issued by the server.
func decodeClaims(token string) (*TokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims shape")
	}

	claims := &TokenClaims{}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if phone, ok := mapClaims["phoneNumber"].(string); ok {
		claims.PhoneNumber = phone
	}
	if uid, ok := mapClaims["uid"].(string); ok {
		claims.UID = uid
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	return claims, nil
}

// LoginOwner completes the owner OTP flow and activates the session.
func (s *Session) LoginOwner(ctx context.Context, phoneNumber, accessCode string) (State, error) {
	token, err := s.api.ValidateOwnerCode(ctx, phoneNumber, accessCode)
	if err != nil {
		return State{}, err
	}

	return s.acceptFreshToken(token)
}

// LoginEmployeeCode completes the employee OTP flow and activates the session.
func (s *Session) LoginEmployeeCode(ctx context.Context, email, accessCode string) (State, error) {
	token, err := s.api.ValidateEmployeeCode(ctx, email, accessCode)
	if err != nil {
		return State{}, err
	}

	return s.acceptFreshToken(token)
}

// LoginEmployeePassword logs an employee in by password and activates the session.
func (s *Session) LoginEmployeePassword(ctx context.Context, email, password string) (State, error) {
	token, err := s.api.LoginWithPassword(ctx, email, password)
	if err != nil {
		return State{}, err
	}

	return s.acceptFreshToken(token)
}

// Logout drops the local session. The token itself stays valid until it
// expires; there is no server-side revocation.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear token")
	}

	s.setState(State{Kind: StateAnonymous})

	return nil
}

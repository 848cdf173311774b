package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthenticated is returned when a token does not resolve to a live
// session.
var ErrUnauthenticated = errors.New("unauthenticated")

// Store maps live session ids to account ids. Sessions exist only for the
// lifetime of the process; there is no persistence and no expiry sweep beyond
// the TTL baked into the token itself.
//
// The cookie value handed to the browser is a signed token carrying the
// session id. The signature stops cookie forgery, but the token alone is
// worthless: resolution requires a matching entry here, so logout revokes
// server-side immediately.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]int64
	secret   []byte
	ttl      time.Duration
}

// NewStore creates an empty session store signing tokens with secret. A zero
// ttl disables the expiry claim.
func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]int64),
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Create opens a session for the given account and returns the token to set
// as the cookie value.
func (s *Store) Create(accountID int64) (string, error) {
	sid := uuid.NewString()

	c := claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if s.ttl != 0 {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.mu.Lock()
	s.sessions[sid] = accountID
	s.mu.Unlock()

	return token, nil
}

// Resolve returns the account id bound to the token. Pure lookup, no side
// effects.
func (s *Store) Resolve(token string) (int64, error) {
	sid, err := s.parse(token)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	s.mu.RLock()
	accountID, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrUnauthenticated
	}
	return accountID, nil
}

// Destroy removes the session bound to the token. Destroying an unknown or
// malformed token is not an error.
func (s *Store) Destroy(token string) {
	sid, err := s.parse(token)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) parse(token string) (string, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || c.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return c.SessionID, nil
}

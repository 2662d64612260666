package session

import (
	"errors"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrInvalidToken     = errors.New("cannot decode token claims")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Claims is what we read out of the access token for display purposes.
// The token is decoded WITHOUT signature verification: this program cannot
// validate authenticity and never makes authorization decisions from these
// values. The backend re-checks the token on every request.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Store holds the bearer token and its derived identity claims.
// On every token change the token is mirrored to a durable file so that a
// restart restores the session without re-authentication, up to
// backend-side expiry.
type Store struct {
	mu        sync.RWMutex
	tokenFile string
	token     string
	claims    *Claims
}

// NewStore creates a session store persisting the token to tokenFile.
func NewStore(tokenFile string) *Store {
	return &Store{tokenFile: tokenFile}
}

// Restore loads a previously mirrored token, if any. A missing token file
// simply leaves the store unauthenticated.
func (s *Store) Restore() {
	raw, err := os.ReadFile(s.tokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("failed to read token file %s: %s", s.tokenFile, err)
		}
		return
	}
	if err := s.Login(string(raw)); err != nil {
		log.Warnf("stored token is not decodable, session cleared: %s", err)
	}
}

// Login stores the opaque token and optimistically decodes its claims.
// No expiry check is performed: an expired-but-present token counts as
// authenticated until the backend itself rejects a request with it.
// A token whose claims cannot be decoded is not held at all; the store is
// logged out and ErrInvalidToken returned.
func (s *Store) Login(token string) error {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		s.Logout()
		return ErrInvalidToken
	}

	s.mu.Lock()
	s.token = token
	s.claims = claims
	s.mu.Unlock()

	s.persist(token)
	return nil
}

// Logout clears the token and claims and removes the mirrored credential.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.claims = nil
	s.mu.Unlock()

	s.persist("")
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Claims returns the decoded identity claims, nil when logged out.
func (s *Store) Claims() *Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// IsAuthenticated reports whether a token is present. This is a presence
// check only, not a validity or expiry check.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// persist mirrors the token to the token file, or removes the file when
// the token is empty.
func (s *Store) persist(token string) {
	if s.tokenFile == "" {
		return
	}
	if token == "" {
		if err := os.Remove(s.tokenFile); err != nil && !os.IsNotExist(err) {
			log.Errorf("failed to remove token file %s: %s", s.tokenFile, err)
		}
		return
	}
	if err := os.WriteFile(s.tokenFile, []byte(token), 0o600); err != nil {
		log.Errorf("failed to write token file %s: %s", s.tokenFile, err)
	}
}

package api

import (
	"context"
	"log"
	"sync"
)

//go:generate moq -out mocks/token_store.go -pkg mocks -skip-ensure -fmt goimports . TokenStore

// TokenStore persists the bearer token between process restarts
type TokenStore interface {
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Session holds the bearer credential shared by all calls of a Client.
// It is safe for concurrent use.
type Session struct {
	store TokenStore

	mu     sync.RWMutex
	token  string
	loaded bool
}

// NewSession makes a session backed by store. A nil store keeps the token in memory only.
func NewSession(store TokenStore) *Session {
	return &Session{store: store, loaded: store == nil}
}

// Token returns the current token, reading the persisted one on first use
func (s *Session) Token(ctx context.Context) string {
	s.mu.RLock()
	token, loaded := s.token, s.loaded
	s.mu.RUnlock()
	if loaded {
		return token
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.token
	}
	s.loaded = true
	stored, err := s.store.LoadToken(ctx)
	if err != nil {
		log.Printf("[WARN] can't load stored token: %v", err)
		return ""
	}
	s.token = stored
	return s.token
}

// Set replaces the token and persists it
func (s *Session) Set(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.loaded = true
	s.mu.Unlock()

	if s.store == nil {
		return
	}
	if err := s.store.SaveToken(ctx, token); err != nil {
		log.Printf("[WARN] can't persist token: %v", err)
	}
}

// Invalidate drops the token if it is still the stale one, so a token obtained by a
// concurrent refresh survives. Returns true if the token was dropped.
func (s *Session) Invalidate(ctx context.Context, stale string) bool {
	s.mu.Lock()
	if s.token != stale {
		s.mu.Unlock()
		return false
	}
	s.token = ""
	s.loaded = true
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.ClearToken(ctx); err != nil {
			log.Printf("[WARN] can't clear stored token: %v", err)
		}
	}
	return true
}

package mem

import (
	"context"
	"sync"
	"time"
)

// TokenRevoker remembers logged out session tokens (by jti) until they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// UserKey is the revocation key that invalidates every session of a user.
func UserKey(userID string) string {
	return "user:" + userID
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// sweep on write so the map never outgrows the live token set
	for id, exp := range s.data {
		if now.After(exp) {
			delete(s.data, id)
		}
	}
	s.data[tokenID] = now.Add(ttl)
	return nil
}

func (s *RevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.data[tokenID]
	if !ok || s.now().After(exp) {
		return false, nil
	}
	return true, nil
}

func (s *RevokedTokens) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

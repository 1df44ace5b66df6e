package utils

import (
	"sync"
	"time"
)

// TokenBlacklist is a process-local set of revoked tokens. Each entry carries
// the token's own expiry so that revoked-but-expired entries can be dropped:
// once a token is past its natural expiry the verifier rejects it anyway, so
// keeping it listed only leaks memory. Safe for concurrent use.
type TokenBlacklist struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> natural expiry
}

// NewTokenBlacklist creates an empty blacklist
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{tokens: make(map[string]time.Time)}
}

// Revoke adds the exact token string to the blacklist. Revoking a token twice
// is a no-op. Each call also sweeps out entries whose tokens have expired.
func (bl *TokenBlacklist) Revoke(token string, expiresAt time.Time) {
	now := time.Now()
	bl.mu.Lock()
	defer bl.mu.Unlock()
	for t, exp := range bl.tokens {
		if now.After(exp) {
			delete(bl.tokens, t)
		}
	}
	bl.tokens[token] = expiresAt
}

// IsRevoked reports whether the token has been revoked and is still within its
// validity window. Expired entries are evicted lazily.
func (bl *TokenBlacklist) IsRevoked(token string) bool {
	bl.mu.RLock()
	exp, ok := bl.tokens[token]
	bl.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		bl.mu.Lock()
		delete(bl.tokens, token)
		bl.mu.Unlock()
		return false
	}
	return true
}

// Len returns the number of currently tracked revocations
func (bl *TokenBlacklist) Len() int {
	bl.mu.RLock()
	defer bl.mu.RUnlock()
	return len(bl.tokens)
}

package session

import (
	"sync"

	"github.com/CareVault/CV-Backend/internal/apperr"
	"github.com/google/uuid"
)

// Registry maps opaque session tokens to user IDs. Tokens are handed to
// clients as the session_id cookie; the client never supplies its own
// identity, only the token.
//
// Sessions have no expiry and a user may hold several live sessions at once.
// Whether either should be restricted is a product decision that has not been
// made, so the registry does not assume one.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]uint)}
}

// Start allocates a fresh token bound to userID. Token values come from a
// cryptographically random UUID, never a counter, and a live token is never
// reissued.
func (r *Registry) Start(userID uint) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := uuid.NewString()
	for {
		if _, live := r.sessions[token]; !live {
			break
		}
		token = uuid.NewString()
	}
	r.sessions[token] = userID
	return token
}

// Lookup resolves a token to its user ID. Pure read.
func (r *Registry) Lookup(token string) (uint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.sessions[token]
	return userID, ok
}

// End terminates a session. Ending an unknown or already-ended token returns
// apperr.ErrNotFound so callers can record the anomaly; the logout flow still
// treats it as success toward the client.
func (r *Registry) End(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[token]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.sessions, token)
	return nil
}

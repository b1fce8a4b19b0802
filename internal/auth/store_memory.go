package auth

import (
	"sync"

	"github.com/CareVault/CV-Backend/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore is an in-memory UserStore for tests and local experiments.
// Same contract as GormStore, no database required.
type MemoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	nextID  uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byEmail: make(map[string]*User), nextID: 1}
}

func (s *MemoryStore) Create(email, name, rawPassword string) (*User, error) {
	if err := validateNewUser(email, name, rawPassword); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[email]; taken {
		return nil, apperr.ErrEmailTaken
	}
	user := &User{ID: s.nextID, Email: email, Name: name, HashedPassword: string(hashed)}
	s.nextID++
	s.byEmail[email] = user

	copied := *user
	return &copied, nil
}

func (s *MemoryStore) Verify(email, rawPassword string) (*User, error) {
	s.mu.RLock()
	user, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return nil, apperr.ErrNotFound
	}

	copied := *user
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(rawPassword)); err != nil {
		return &copied, apperr.ErrInvalidPassword
	}
	return &copied, nil
}

func (s *MemoryStore) FindByID(id uint) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

package auth

import (
	"errors"

	"github.com/CareVault/CV-Backend/internal/apperr"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GormStore is the production UserStore backed by Postgres.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Create(email, name, rawPassword string) (*User, error) {
	if err := validateNewUser(email, name, rawPassword); err != nil {
		return nil, err
	}

	// Check-then-create; the unique index on email backstops the race.
	var existing User
	err := s.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, apperr.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{Email: email, Name: name, HashedPassword: string(hashed)}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GormStore) Verify(email, rawPassword string) (*User, error) {
	var user User
	err := s.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(rawPassword)); err != nil {
		return &user, apperr.ErrInvalidPassword
	}
	return &user, nil
}

func (s *GormStore) FindByID(id uint) (*User, error) {
	var user User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Package services contains the application services of campusfind. This file
// defines the identity store: account registration, login, logout, and the
// persisted current-session pointer.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// IdentityService registers and authenticates users against the local store.
//
// Contract:
//   - Register: creates an account, fails with common.ErrEmailTaken on a
//     duplicate email, and sets the current session on success.
//   - Login: verifies the password against the stored bcrypt hash; an unknown
//     email and a wrong password both yield common.ErrUnauthorized.
//   - Logout: clears the persisted session unconditionally.
//   - Current: returns the persisted session user, or nil when none is set.
//
// All methods must honor context cancellation/timeouts.
type IdentityService interface {
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
}

type identityService struct {
	store storage.Gateway
}

// NewIdentityService constructs an IdentityService bound to the given gateway.
func NewIdentityService(store storage.Gateway) IdentityService {
	return &identityService{store: store}
}

// Register creates a User with a fresh id and a bcrypt password hash, appends
// it to the users collection, and persists it as the current session.
func (s *identityService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	err = storage.Update(ctx, s.store, storage.KeyUsers, func(data []byte) ([]byte, error) {
		users, err := decodeUsers(data)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if u.Email == user.Email {
				return nil, common.ErrEmailTaken
			}
		}
		return encodeUsers(append(users, user))
	})
	if err != nil {
		return nil, err
	}

	if err := s.setSession(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login looks the user up by email and compares the supplied password against
// the stored bcrypt hash. A missing user and a failed comparison are reported
// identically as common.ErrUnauthorized.
func (s *identityService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	email = strings.TrimSpace(email)

	c, err := s.store.Read(ctx, storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	users, err := decodeUsers(c.Data)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), password) != nil {
			return nil, common.ErrUnauthorized
		}
		if err := s.setSession(ctx, &u); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, common.ErrUnauthorized
}

// Logout clears the persisted session. It is a no-op when no session exists.
func (s *identityService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, storage.KeySession)
}

// Current returns the persisted session user, or (nil, nil) when logged out.
// It is read at startup to restore state across restarts.
func (s *identityService) Current(ctx context.Context) (*models.User, error) {
	c, err := s.store.Read(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	if len(c.Data) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(c.Data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

// setSession replaces the session record with user, retrying on a concurrent
// writer like every other collection write.
func (s *identityService) setSession(ctx context.Context, user *models.User) error {
	return storage.Update(ctx, s.store, storage.KeySession, func([]byte) ([]byte, error) {
		data, err := json.Marshal(user)
		if err != nil {
			return nil, fmt.Errorf("failed to encode session: %w", err)
		}
		return data, nil
	})
}

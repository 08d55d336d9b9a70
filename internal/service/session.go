package service

import (
	"context"
	"errors"

	"novepus/internal/pkg/security"
	"novepus/internal/repository"

	"gorm.io/gorm"
)

// GuestUser is the identity bound to a session before login.
const GuestUser = "_guest_user_"

// Session holds the identity of one interactive run. Every authorization
// decision is delegated to the repository, the session only remembers who
// is logged in.
type Session struct {
	userRepo repository.UserRepo
	current  string
}

func NewSession(userRepo repository.UserRepo) *Session {
	return &Session{userRepo: userRepo, current: GuestUser}
}

func (s *Session) Current() string {
	return s.current
}

func (s *Session) IsGuest() bool {
	return s.current == GuestUser
}

// Login authenticates against the stored credential and marks the user
// online. The identity only changes on success.
func (s *Session) Login(ctx context.Context, username string, password string) error {
	user, err := s.userRepo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := security.CheckPasswordHash(password, user.Password); err != nil {
		return ErrWrongPassword
	}
	if err := s.userRepo.UpdateOnline(ctx, username, true); err != nil {
		return err
	}
	s.current = username
	return nil
}

// Logout clears the online flag and resets the session to guest.
func (s *Session) Logout(ctx context.Context) error {
	if s.IsGuest() {
		return nil
	}
	if err := s.userRepo.UpdateOnline(ctx, s.current, false); err != nil {
		return err
	}
	s.current = GuestUser
	return nil
}

package service

import (
	"errors"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNameTaken        = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user does not exist")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrPostNotFound     = errors.New("post does not exist")
	ErrMessageNotFound  = errors.New("message does not exist")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user yet")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrNotOwner         = errors.New("record belongs to another user")
)

// Recoverable reports whether an error is a business rule violation that a
// guided flow handles by re-prompting. Anything else is treated as a
// storage failure and aborts the operation.
func Recoverable(err error) bool {
	for _, kind := range []error{
		ErrInvalidInput, ErrNameTaken, ErrUserNotFound, ErrWrongPassword,
		ErrPostNotFound, ErrMessageNotFound, ErrAlreadyFollowing,
		ErrNotFollowing, ErrSelfFollow, ErrNotOwner,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

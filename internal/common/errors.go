// Package common defines shared constants and sentinel errors used across
// client and server layers of authkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account lifecycle errors. The text is shown to the end user as is.
	ErrAccountExists           = errors.New("user already exists")
	ErrAccountNotFound         = errors.New("user not found")
	ErrAccountNotConfirmed     = errors.New("user not confirmed, we have sent a confirmation e-mail")
	ErrAccountAlreadyConfirmed = errors.New("user already confirmed")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrTokenNotFound           = errors.New("token not found")
	ErrPasswordTooLong         = errors.New("password is too long, maximum 72 bytes")

	// Notification errors.
	ErrUnknownTemplate = errors.New("unknown message template")
)

// IsDomainError reports whether err is one of the account lifecycle errors
// whose message may be returned to the caller.
func IsDomainError(err error) bool {
	for _, e := range []error{
		ErrAccountExists,
		ErrAccountNotFound,
		ErrAccountNotConfirmed,
		ErrAccountAlreadyConfirmed,
		ErrInvalidPassword,
		ErrTokenNotFound,
		ErrPasswordTooLong,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

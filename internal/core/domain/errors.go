package domain

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("inactive user")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrAuthorizationDenied  = errors.New("authorization denied")
	ErrLoginInFlight        = errors.New("login already in flight")
	ErrSessionNotFound      = errors.New("session not found")
	ErrBillNotFound         = errors.New("bill not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("access forbidden")
)

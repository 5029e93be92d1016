package usecase

import "errors"

var (
	ErrDuplicateUser      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFoundOrForbidden covers both a nonexistent content id and one
	// owned by someone else, so callers cannot enumerate ids.
	ErrNotFoundOrForbidden = errors.New("content not found or not owned by user")

	ErrDuplicateTag    = errors.New("tag already exists")
	ErrSharingDisabled = errors.New("sharing is disabled for this user")
)

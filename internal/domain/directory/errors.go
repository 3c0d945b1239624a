package directory

import "errors"

var (
	ErrNotFound          = errors.New("employee not found")
	ErrForbidden         = errors.New("forbidden")
	ErrDuplicate         = errors.New("employee number or email already exists")
	ErrInvalidSupervisor = errors.New("supervisor must reference a user with the supervisor role")
	ErrSelfRemoval       = errors.New("cannot remove own account")
)

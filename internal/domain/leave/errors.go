package leave

import "errors"

var (
	ErrNotFound     = errors.New("leave request not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("leave request already decided")
	ErrInvalidRange = errors.New("end date before start date")
	ErrDuplicateDay = errors.New("holiday already exists for that date")
)

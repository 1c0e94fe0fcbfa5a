package models

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything
// not in this list is reported as a generic internal error.
var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("please authenticate")
	ErrForbidden          = errors.New("forbidden")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAlreadyApplied     = errors.New("already applied to this campaign")
)

// ValidationError carries a user-safe message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package leave

import "errors"

var (
	ErrGrantNotFound         = errors.New("leave grant not found")
	ErrGrantAlreadyProcessed = errors.New("leave grant has already been approved or rejected")
	ErrGrantNotCancellable   = errors.New("leave grant can no longer be cancelled")
	ErrInvalidDuration       = errors.New("requested duration is not in the allowed set")
	ErrUnauthorized          = errors.New("unauthorized to access this leave grant")
)

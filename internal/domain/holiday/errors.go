package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrDateTaken       = errors.New("a holiday already exists for that date")
	ErrPastDate        = errors.New("holidays cannot be created for past dates")
)

package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrUnauthorized     = errors.New("unauthorized to access this attendance record")
	ErrDuplicateForDate = errors.New("an attendance record already exists for that date")

	ErrAppealNotFound        = errors.New("appeal not found")
	ErrAppealExists          = errors.New("an appeal already exists for this record")
	ErrRecordNotAppealable   = errors.New("only late or absent records can be appealed")
	ErrAppealAlreadyReviewed = errors.New("appeal has already been reviewed")
)

package medical

import "errors"

var (
	ErrMedicalLeaveNotFound = errors.New("medical leave not found")
)

package schedule

import "errors"

var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrNoActiveSchedule     = errors.New("employee has no active work schedule")
)

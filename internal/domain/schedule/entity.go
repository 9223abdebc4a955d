package schedule

import "time"

// WorkSchedule is the expected clock-in time assigned to one staff member.
// At most one schedule per employee should be active at a time; when the data
// violates that, lookups resolve to the most recently activated one.
type WorkSchedule struct {
	ID               string
	EmployeeID       string
	StartTime        time.Time // only the time-of-day component is meaningful
	ToleranceMinutes int
	Active           bool
	ActivatedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StartMinutes returns the expected start as minutes since midnight.
func (s WorkSchedule) StartMinutes() int {
	return s.StartTime.Hour()*60 + s.StartTime.Minute()
}

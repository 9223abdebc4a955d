package medical

import "time"

// MedicalLeave covers the inclusive range [StartDate, StartDate + Days - 1].
type MedicalLeave struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	Days       int
	CreatedBy  *string
	CreatedAt  time.Time

	// DTO
	EmployeeName *string
}

// EndDate returns the last calendar day the leave covers.
func (m MedicalLeave) EndDate() time.Time {
	return m.StartDate.AddDate(0, 0, m.Days-1)
}

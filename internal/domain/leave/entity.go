package leave

import "time"

type GrantStatus string

const (
	GrantStatusPending   GrantStatus = "pending"
	GrantStatusApproved  GrantStatus = "approved"
	GrantStatusRejected  GrantStatus = "rejected"
	GrantStatusCancelled GrantStatus = "cancelled"
)

// Session marks which half of the day a half-day grant covers. Full-day and
// multi-day grants use SessionFullDay.
type Session string

const (
	SessionMorning   Session = "AM"
	SessionAfternoon Session = "PM"
	SessionFullDay   Session = "FD"
)

var SessionValues = []string{
	string(SessionMorning),
	string(SessionAfternoon),
	string(SessionFullDay),
}

// AllowedDurations is the discrete set of requestable administrative-day
// durations, in business days.
var AllowedDurations = []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}

// IsAllowedDuration reports whether d is one of the requestable durations.
func IsAllowedDuration(d float64) bool {
	for _, allowed := range AllowedDurations {
		if d == allowed {
			return true
		}
	}
	return false
}

// Grant is an administrative-day-off request. EndDate is derived from
// StartDate and DurationDays with business-day arithmetic when the request is
// created; only approved grants are visible to attendance resolution.
type Grant struct {
	ID           string
	EmployeeID   string
	CreatedBy    *string
	StartDate    time.Time
	EndDate      time.Time
	DurationDays float64
	Session      Session
	Status       GrantStatus
	Reason       string

	RejectionReason    string
	CancellationReason string
	CancelledBy        *string
	CancelledAt        *time.Time
	ApprovedBy         *string
	ApprovedAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// IsHalfDay reports whether the grant covers only one session of its date.
func (g Grant) IsHalfDay() bool {
	return g.DurationDays == 0.5
}

// Covers reports whether the grant covers the given date for the given
// session. A SessionFullDay check is covered by any grant whose range
// includes the date; a half-day grant covers a session check only when the
// sessions match.
func (g Grant) Covers(date time.Time, session Session) bool {
	day := date.Truncate(24 * time.Hour)
	if day.Before(g.StartDate.Truncate(24*time.Hour)) || day.After(g.EndDate.Truncate(24*time.Hour)) {
		return false
	}

	if session == SessionFullDay || session == "" {
		return true
	}

	if g.IsHalfDay() {
		return g.Session == session
	}

	return true
}

package attendance

import "time"

// Status is the resolved classification of one (employee, date) record.
type Status string

// Statuses in resolution priority order: the first matching one wins.
const (
	StatusNoSchedule          Status = "no_schedule"
	StatusHoliday             Status = "holiday"
	StatusMedicalLeave        Status = "medical_leave"
	StatusAdministrativeLeave Status = "administrative_leave"
	StatusJustified           Status = "justified"
	StatusAbsent              Status = "absent"
	StatusOnTime              Status = "on_time"
	StatusLate                Status = "late"
)

var StatusValues = []string{
	string(StatusNoSchedule),
	string(StatusHoliday),
	string(StatusMedicalLeave),
	string(StatusAdministrativeLeave),
	string(StatusJustified),
	string(StatusAbsent),
	string(StatusOnTime),
	string(StatusLate),
}

// Record is the daily attendance row for one staff member. Unique per
// (employee, date); status and the derived minute fields are recomputed on
// every save from the raw punches and the day-level overrides.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time

	LatenessMinutes int
	WorkedMinutes   *int
	Status          Status

	// ScheduleID references the schedule the record was last resolved
	// against; re-attached on every save.
	ScheduleID *string

	ManualJustification string
	JustifiedBy         *string
	JustifiedAt         *time.Time

	ProcessedBy *string
	ProcessedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

// CanBeAppealed reports whether the record's status allows an employee
// appeal. Only late and absent outcomes are contestable.
func (r Record) CanBeAppealed() bool {
	return r.Status == StatusLate || r.Status == StatusAbsent
}

type AppealStatus string

const (
	AppealStatusPending  AppealStatus = "pending"
	AppealStatusApproved AppealStatus = "approved"
	AppealStatusRejected AppealStatus = "rejected"
)

var AppealStatusValues = []string{
	string(AppealStatusPending),
	string(AppealStatusApproved),
	string(AppealStatusRejected),
}

// Appeal is an employee's challenge to their own late or absent record.
// At most one appeal exists per record. Approval justifies the record
// through the normal resolution path.
type Appeal struct {
	ID       string
	RecordID string
	Reason   string
	Status   AppealStatus

	AdminResponse string
	ReviewedBy    *string
	ReviewedAt    *time.Time

	CreatedAt time.Time

	// DTO, joined from the record and its owner
	EmployeeID   string
	EmployeeName *string
	RecordDate   time.Time
	RecordStatus Status
}

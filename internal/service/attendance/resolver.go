package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/domain/schedule"
)

// Narrow lookup interfaces so the resolver only sees the queries it needs.
// The domain repositories satisfy them. Holiday, leave and medical lookups
// are optional collaborators: a nil reference degrades to "not covered"
// instead of failing resolution.
type (
	ScheduleLookup interface {
		ActiveFor(ctx context.Context, employeeID string) (*schedule.WorkSchedule, error)
	}

	HolidayLookup interface {
		ExistsByDate(ctx context.Context, date time.Time) (bool, error)
	}

	LeaveLookup interface {
		ApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]leave.Grant, error)
	}

	MedicalLookup interface {
		CoveringExists(ctx context.Context, employeeID string, date time.Time, lookbackDays int) (bool, error)
	}
)

// Resolution is the derived outcome for one (employee, date).
type Resolution struct {
	Status          attendance.Status
	LatenessMinutes int
	WorkedMinutes   *int
	ScheduleID      *string
}

// StatusResolver decides the authoritative attendance status for one
// employee and date. It is pure apart from the injected read-only lookups
// and is safe to re-run: identical inputs yield identical resolutions.
type StatusResolver struct {
	schedules ScheduleLookup
	holidays  HolidayLookup
	leaves    LeaveLookup
	medical   MedicalLookup

	// lookbackDays bounds how far before the checked date a medical leave
	// may start and still be considered.
	lookbackDays int
}

func NewStatusResolver(schedules ScheduleLookup, holidays HolidayLookup, leaves LeaveLookup, medical MedicalLookup, lookbackDays int) *StatusResolver {
	return &StatusResolver{
		schedules:    schedules,
		holidays:     holidays,
		leaves:       leaves,
		medical:      medical,
		lookbackDays: lookbackDays,
	}
}

// Resolve derives the status, lateness and worked minutes for the given day.
// Statuses are checked in priority order; the first match wins. The session
// parameter selects which half of the day a half-day grant must cover; pass
// leave.SessionFullDay for whole-day resolution.
func (r *StatusResolver) Resolve(ctx context.Context, employeeID string, date time.Time, clockIn, clockOut *time.Time, manualJustification string, session leave.Session) (Resolution, error) {
	res := Resolution{
		WorkedMinutes: workedMinutes(clockIn, clockOut),
	}

	activeSchedule, err := r.schedules.ActiveFor(ctx, employeeID)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to get active schedule: %w", err)
	}
	if activeSchedule == nil {
		res.Status = attendance.StatusNoSchedule
		return res, nil
	}
	res.ScheduleID = &activeSchedule.ID

	isHoliday, err := r.isHoliday(ctx, date)
	if err != nil {
		return Resolution{}, err
	}
	if isHoliday {
		res.Status = attendance.StatusHoliday
		return res, nil
	}

	onMedicalLeave, err := r.medicalLeaveCovers(ctx, employeeID, date)
	if err != nil {
		return Resolution{}, err
	}
	if onMedicalLeave {
		res.Status = attendance.StatusMedicalLeave
		return res, nil
	}

	onLeave, err := r.leaveCovers(ctx, employeeID, date, session)
	if err != nil {
		return Resolution{}, err
	}
	if onLeave {
		res.Status = attendance.StatusAdministrativeLeave
		return res, nil
	}

	if manualJustification != "" {
		res.Status = attendance.StatusJustified
		return res, nil
	}

	if clockIn == nil {
		res.Status = attendance.StatusAbsent
		return res, nil
	}

	// Lateness is the raw difference between actual and scheduled minutes
	// since midnight. An early arrival gives a negative value, which is
	// within any tolerance.
	actualMinutes := clockIn.Hour()*60 + clockIn.Minute()
	lateness := actualMinutes - activeSchedule.StartMinutes()

	if lateness <= activeSchedule.ToleranceMinutes {
		res.Status = attendance.StatusOnTime
		res.LatenessMinutes = 0
	} else {
		res.Status = attendance.StatusLate
		res.LatenessMinutes = lateness
	}

	return res, nil
}

func (r *StatusResolver) isHoliday(ctx context.Context, date time.Time) (bool, error) {
	if r.holidays == nil {
		return false, nil
	}
	ok, err := r.holidays.ExistsByDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday calendar: %w", err)
	}
	return ok, nil
}

func (r *StatusResolver) medicalLeaveCovers(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	if r.medical == nil {
		return false, nil
	}
	ok, err := r.medical.CoveringExists(ctx, employeeID, date, r.lookbackDays)
	if err != nil {
		return false, fmt.Errorf("failed to check medical leaves: %w", err)
	}
	return ok, nil
}

func (r *StatusResolver) leaveCovers(ctx context.Context, employeeID string, date time.Time, session leave.Session) (bool, error) {
	if r.leaves == nil {
		return false, nil
	}
	grants, err := r.leaves.ApprovedCovering(ctx, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to check leave grants: %w", err)
	}
	for _, g := range grants {
		if g.Covers(date, session) {
			return true, nil
		}
	}
	return false, nil
}

// workedMinutes returns the minutes between the punches, or nil when either
// punch is missing or the pair is inconsistent (clock-out not after
// clock-in).
func workedMinutes(clockIn, clockOut *time.Time) *int {
	if clockIn == nil || clockOut == nil {
		return nil
	}
	if !clockOut.After(*clockIn) {
		return nil
	}
	minutes := int(clockOut.Sub(*clockIn).Minutes())
	return &minutes
}

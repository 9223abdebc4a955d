package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleLookup struct {
	schedules map[string]*schedule.WorkSchedule
}

func (f *fakeScheduleLookup) ActiveFor(ctx context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	return f.schedules[employeeID], nil
}

type fakeHolidayLookup struct {
	dates map[string]bool
}

func (f *fakeHolidayLookup) ExistsByDate(ctx context.Context, date time.Time) (bool, error) {
	return f.dates[date.Format("2006-01-02")], nil
}

type fakeLeaveLookup struct {
	grants []leave.Grant
}

func (f *fakeLeaveLookup) ApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]leave.Grant, error) {
	var out []leave.Grant
	for _, g := range f.grants {
		if g.EmployeeID != employeeID || g.Status != leave.GrantStatusApproved {
			continue
		}
		if date.Before(g.StartDate) || date.After(g.EndDate) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

type fakeMedicalLookup struct {
	covered map[string]bool
}

func (f *fakeMedicalLookup) CoveringExists(ctx context.Context, employeeID string, date time.Time, lookbackDays int) (bool, error) {
	return f.covered[employeeID+"/"+date.Format("2006-01-02")], nil
}

func scheduleAt(t *testing.T, employeeID, startTime string, tolerance int) *schedule.WorkSchedule {
	t.Helper()
	start, err := time.Parse("15:04", startTime)
	require.NoError(t, err)
	return &schedule.WorkSchedule{
		ID:               "sched-" + employeeID,
		EmployeeID:       employeeID,
		StartTime:        start,
		ToleranceMinutes: tolerance,
		Active:           true,
	}
}

func testResolver(t *testing.T, schedules *fakeScheduleLookup, holidays *fakeHolidayLookup, leaves *fakeLeaveLookup, medical *fakeMedicalLookup) *StatusResolver {
	t.Helper()
	var h HolidayLookup
	if holidays != nil {
		h = holidays
	}
	var l LeaveLookup
	if leaves != nil {
		l = leaves
	}
	var m MedicalLookup
	if medical != nil {
		m = medical
	}
	return NewStatusResolver(schedules, h, l, m, 30)
}

func clockAt(t *testing.T, date time.Time, hhmm string) *time.Time {
	t.Helper()
	c, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	full := time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
	return &full
}

func TestResolve_NoSchedule(t *testing.T) {
	ctx := context.Background()
	r := testResolver(t, &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{}}, nil, nil, nil)

	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	res, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:00"), nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusNoSchedule, res.Status)
	assert.Nil(t, res.ScheduleID)
}

func TestResolve_HolidayBeatsLeave(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	holidays := &fakeHolidayLookup{dates: map[string]bool{"2025-06-09": true}}
	leaves := &fakeLeaveLookup{grants: []leave.Grant{{
		EmployeeID:   "emp-1",
		StartDate:    date,
		EndDate:      date,
		DurationDays: 1,
		Session:      leave.SessionFullDay,
		Status:       leave.GrantStatusApproved,
	}}}

	r := testResolver(t, schedules, holidays, leaves, nil)
	res, err := r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHoliday, res.Status)
}

func TestResolve_MedicalLeaveBeatsAdministrative(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	medical := &fakeMedicalLookup{covered: map[string]bool{"emp-1/2025-06-09": true}}
	leaves := &fakeLeaveLookup{grants: []leave.Grant{{
		EmployeeID:   "emp-1",
		StartDate:    date,
		EndDate:      date,
		DurationDays: 1,
		Session:      leave.SessionFullDay,
		Status:       leave.GrantStatusApproved,
	}}}

	r := testResolver(t, schedules, nil, leaves, medical)
	res, err := r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusMedicalLeave, res.Status)
}

func TestResolve_AdministrativeLeave(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	leaves := &fakeLeaveLookup{grants: []leave.Grant{{
		EmployeeID:   "emp-1",
		StartDate:    date,
		EndDate:      date.AddDate(0, 0, 1),
		DurationDays: 2,
		Session:      leave.SessionFullDay,
		Status:       leave.GrantStatusApproved,
	}}}

	r := testResolver(t, schedules, nil, leaves, nil)
	res, err := r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAdministrativeLeave, res.Status)
}

func TestResolve_HalfDaySessionMatching(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	leaves := &fakeLeaveLookup{grants: []leave.Grant{{
		EmployeeID:   "emp-1",
		StartDate:    date,
		EndDate:      date,
		DurationDays: 0.5,
		Session:      leave.SessionMorning,
		Status:       leave.GrantStatusApproved,
	}}}

	r := testResolver(t, schedules, nil, leaves, nil)

	// An AM half-day grant does not cover a PM-session check.
	res, err := r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionAfternoon)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, res.Status)

	res, err = r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionMorning)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAdministrativeLeave, res.Status)

	// A whole-day check is covered by any grant on the date.
	res, err = r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAdministrativeLeave, res.Status)
}

func TestResolve_Justified(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}

	r := testResolver(t, schedules, nil, nil, nil)
	res, err := r.Resolve(ctx, "emp-1", date, nil, nil, "personal errand approved by director", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusJustified, res.Status)
}

func TestResolve_Absent(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}

	r := testResolver(t, schedules, nil, nil, nil)
	res, err := r.Resolve(ctx, "emp-1", date, nil, nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, res.Status)
	assert.Equal(t, 0, res.LatenessMinutes)
}

func TestResolve_LatenessBoundary(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	r := testResolver(t, schedules, nil, nil, nil)

	// Exactly at the tolerance limit: on time, lateness stored as zero.
	res, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:15"), nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, res.Status)
	assert.Equal(t, 0, res.LatenessMinutes)

	// One minute past: late, and the full difference is stored.
	res, err = r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:16"), nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, res.Status)
	assert.Equal(t, 16, res.LatenessMinutes)
}

func TestResolve_EarlyArrival(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	r := testResolver(t, schedules, nil, nil, nil)

	res, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "07:30"), nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, res.Status)
	assert.Equal(t, 0, res.LatenessMinutes)
}

func TestResolve_WorkedMinutes(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	r := testResolver(t, schedules, nil, nil, nil)

	res, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:00"), clockAt(t, date, "17:00"), "", leave.SessionFullDay)
	require.NoError(t, err)
	require.NotNil(t, res.WorkedMinutes)
	assert.Equal(t, 540, *res.WorkedMinutes)

	// Clock-out before clock-in is an inconsistent punch, not an error.
	res, err = r.Resolve(ctx, "emp-1", date, clockAt(t, date, "17:00"), clockAt(t, date, "08:00"), "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Nil(t, res.WorkedMinutes)
}

func TestResolve_Idempotent(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 10),
	}}
	r := testResolver(t, schedules, nil, nil, nil)

	first, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:25"), clockAt(t, date, "17:00"), "", leave.SessionFullDay)
	require.NoError(t, err)
	second, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:25"), clockAt(t, date, "17:00"), "", leave.SessionFullDay)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, attendance.StatusLate, first.Status)
	assert.Equal(t, 25, first.LatenessMinutes)
}

func TestResolve_NilCollaboratorsDegradeGracefully(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	schedules := &fakeScheduleLookup{schedules: map[string]*schedule.WorkSchedule{
		"emp-1": scheduleAt(t, "emp-1", "08:00", 15),
	}}
	r := NewStatusResolver(schedules, nil, nil, nil, 30)

	res, err := r.Resolve(ctx, "emp-1", date, clockAt(t, date, "08:05"), nil, "", leave.SessionFullDay)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOnTime, res.Status)
}

package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/service/businessday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepository struct {
	records                     []attendance.Record
	withoutRecord               []string
	employeesWithoutRecordCalls int
	upsertCalls                 int
}

func (f *fakeRecordRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.upsertCalls++
	rec.ID = "rec-1"
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRecordRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepository) Update(ctx context.Context, rec attendance.Record) error {
	for i := range f.records {
		if f.records[i].ID == rec.ID {
			f.records[i] = rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeRecordRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeRecordRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeRecordRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepository) EmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	f.employeesWithoutRecordCalls++
	return f.withoutRecord, nil
}

func TestMarkAbsentees_SkipsWeekend(t *testing.T) {
	repo := &fakeRecordRepository{withoutRecord: []string{"emp-1", "emp-2"}}
	svc := NewRecordService(nil, repo, nil, businessday.NewCalculator(nil))

	// Saturday: nobody is expected, so nobody is marked.
	count, err := svc.MarkAbsentees(context.Background(), "2025-06-07")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, repo.employeesWithoutRecordCalls)
	assert.Equal(t, 0, repo.upsertCalls)

	// Sunday behaves the same.
	count, err = svc.MarkAbsentees(context.Background(), "2025-06-08")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestMarkAbsentees_SkipsHoliday(t *testing.T) {
	repo := &fakeRecordRepository{withoutRecord: []string{"emp-1"}}
	holidays := &fakeHolidayLookup{dates: map[string]bool{"2025-06-09": true}}
	svc := NewRecordService(nil, repo, nil, businessday.NewCalculator(holidays))

	// Monday, but a holiday: still no absences fabricated.
	count, err := svc.MarkAbsentees(context.Background(), "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, repo.employeesWithoutRecordCalls)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestMarkAbsentees_RejectsMalformedDate(t *testing.T) {
	repo := &fakeRecordRepository{}
	svc := NewRecordService(nil, repo, nil, businessday.NewCalculator(nil))

	_, err := svc.MarkAbsentees(context.Background(), "09-06-2025")
	require.Error(t, err)
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

const recordColumns = `a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.lateness_minutes,
	a.worked_minutes, a.status, a.schedule_id, a.manual_justification, a.justified_by, a.justified_at,
	a.processed_by, a.processed_at, a.created_at, a.updated_at`

func scanRecord(row pgx.Row, withName bool) (attendance.Record, error) {
	var rec attendance.Record
	dest := []interface{}{
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.ClockIn,
		&rec.ClockOut,
		&rec.LatenessMinutes,
		&rec.WorkedMinutes,
		&rec.Status,
		&rec.ScheduleID,
		&rec.ManualJustification,
		&rec.JustifiedBy,
		&rec.JustifiedAt,
		&rec.ProcessedBy,
		&rec.ProcessedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	}
	if withName {
		dest = append(dest, &rec.EmployeeName)
	}
	err := row.Scan(dest...)
	return rec, err
}

// Upsert implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, clock_in, clock_out, lateness_minutes,
			worked_minutes, status, schedule_id, manual_justification, justified_by, justified_at,
			processed_by, processed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE
		SET clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			lateness_minutes = EXCLUDED.lateness_minutes,
			worked_minutes = EXCLUDED.worked_minutes,
			status = EXCLUDED.status,
			schedule_id = EXCLUDED.schedule_id,
			processed_by = EXCLUDED.processed_by,
			processed_at = NOW(),
			updated_at = NOW()
		RETURNING id, employee_id, date, clock_in, clock_out, lateness_minutes,
			worked_minutes, status, schedule_id, manual_justification, justified_by, justified_at,
			processed_by, processed_at, created_at, updated_at
	`
	return scanRecord(q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.LatenessMinutes,
		rec.WorkedMinutes,
		rec.Status,
		rec.ScheduleID,
		rec.ManualJustification,
		rec.JustifiedBy,
		rec.JustifiedAt,
		rec.ProcessedBy,
	), false)
}

// GetByID implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `, u.first_name || ' ' || u.last_name
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		WHERE a.id = $1
	`
	return scanRecord(q.QueryRow(ctx, query, id), true)
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date = $2
	`
	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $1, clock_out = $2, lateness_minutes = $3, worked_minutes = $4, status = $5,
			schedule_id = $6, manual_justification = $7, justified_by = $8, justified_at = $9,
			processed_by = $10, processed_at = NOW(), updated_at = NOW()
		WHERE id = $11
	`
	tag, err := q.Exec(ctx, query,
		rec.ClockIn,
		rec.ClockOut,
		rec.LatenessMinutes,
		rec.WorkedMinutes,
		rec.Status,
		rec.ScheduleID,
		rec.ManualJustification,
		rec.JustifiedBy,
		rec.JustifiedAt,
		rec.ProcessedBy,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// Delete implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// List implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "TRUE"
	var args []interface{}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(" AND a.employee_id = $%d", len(args))
	}
	if filter.Date != nil && *filter.Date != "" {
		args = append(args, *filter.Date)
		where += fmt.Sprintf(" AND a.date = $%d", len(args))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(" AND a.date >= $%d", len(args))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND a.status = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+recordColumns+`, u.first_name || ' ' || u.last_name
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		WHERE `+where+`
		ORDER BY a.date DESC, u.last_name
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// ListByEmployeeBetween implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, false)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByDate implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.date = $1
		ORDER BY a.employee_id
	`
	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, false)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// EmployeesWithoutRecord implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) EmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id
		FROM users u
		WHERE u.is_active = TRUE
		  AND EXISTS(SELECT 1 FROM work_schedules ws WHERE ws.employee_id = u.id AND ws.active = TRUE)
		  AND NOT EXISTS(SELECT 1 FROM attendance_records a WHERE a.employee_id = u.id AND a.date = $1)
	`
	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

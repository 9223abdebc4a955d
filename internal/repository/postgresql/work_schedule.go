package postgresql

import (
	"context"
	"errors"

	"github.com/colegio-admin/staff-backend-go/internal/domain/schedule"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

const workScheduleColumns = `id, employee_id, start_time, tolerance_minutes, active, activated_at, created_at, updated_at`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID,
		&ws.EmployeeID,
		&ws.StartTime,
		&ws.ToleranceMinutes,
		&ws.Active,
		&ws.ActivatedAt,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	return ws, err
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (id, employee_id, start_time, tolerance_minutes, active, activated_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + workScheduleColumns

	return scanWorkSchedule(q.QueryRow(ctx, query,
		uuid.NewString(),
		ws.EmployeeID,
		ws.StartTime,
		ws.ToleranceMinutes,
		ws.Active,
		ws.ActivatedAt,
	))
}

// Update implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Update(ctx context.Context, ws schedule.WorkSchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET start_time = $1, tolerance_minutes = $2, active = $3, activated_at = $4, updated_at = NOW()
		WHERE id = $5
	`
	_, err := q.Exec(ctx, query,
		ws.StartTime,
		ws.ToleranceMinutes,
		ws.Active,
		ws.ActivatedAt,
		ws.ID,
	)
	return err
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1`
	return scanWorkSchedule(q.QueryRow(ctx, query, id))
}

// ListByEmployee implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+workScheduleColumns+` FROM work_schedules WHERE employee_id = $1 ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}

	return schedules, rows.Err()
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+workScheduleColumns+` FROM work_schedules ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, ws)
	}

	return schedules, rows.Err()
}

// ActiveFor implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) ActiveFor(ctx context.Context, employeeID string) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	// Several active rows should not happen, but the most recently
	// activated one wins when they do.
	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE employee_id = $1 AND active = TRUE
		ORDER BY activated_at DESC NULLS LAST
		LIMIT 1
	`
	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ws, nil
}

// DeactivateAllFor implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) DeactivateAllFor(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE work_schedules
		SET active = FALSE, updated_at = NOW()
		WHERE employee_id = $1 AND active = TRUE
	`, employeeID)
	return err
}

package postgresql

import (
	"context"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/medical"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type medicalLeaveRepositoryImpl struct {
	db *database.DB
}

func NewMedicalLeaveRepository(db *database.DB) medical.MedicalLeaveRepository {
	return &medicalLeaveRepositoryImpl{db: db}
}

const medicalLeaveColumns = `m.id, m.employee_id, m.start_date, m.days, m.created_by, m.created_at`

func scanMedicalLeave(row pgx.Row, withName bool) (medical.MedicalLeave, error) {
	var m medical.MedicalLeave
	dest := []interface{}{
		&m.ID,
		&m.EmployeeID,
		&m.StartDate,
		&m.Days,
		&m.CreatedBy,
		&m.CreatedAt,
	}
	if withName {
		dest = append(dest, &m.EmployeeName)
	}
	err := row.Scan(dest...)
	return m, err
}

// Create implements medical.MedicalLeaveRepository.
func (r *medicalLeaveRepositoryImpl) Create(ctx context.Context, m medical.MedicalLeave) (medical.MedicalLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO medical_leaves (id, employee_id, start_date, days, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, employee_id, start_date, days, created_by, created_at
	`
	return scanMedicalLeave(q.QueryRow(ctx, query,
		uuid.NewString(),
		m.EmployeeID,
		m.StartDate,
		m.Days,
		m.CreatedBy,
	), false)
}

// GetByID implements medical.MedicalLeaveRepository.
func (r *medicalLeaveRepositoryImpl) GetByID(ctx context.Context, id string) (medical.MedicalLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + medicalLeaveColumns + `, u.first_name || ' ' || u.last_name
		FROM medical_leaves m
		JOIN users u ON u.id = m.employee_id
		WHERE m.id = $1
	`
	return scanMedicalLeave(q.QueryRow(ctx, query, id), true)
}

// ListByEmployee implements medical.MedicalLeaveRepository.
func (r *medicalLeaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]medical.MedicalLeave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+medicalLeaveColumns+`
		FROM medical_leaves m
		WHERE m.employee_id = $1
		ORDER BY m.start_date DESC
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []medical.MedicalLeave
	for rows.Next() {
		m, err := scanMedicalLeave(rows, false)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, m)
	}

	return leaves, rows.Err()
}

// List implements medical.MedicalLeaveRepository.
func (r *medicalLeaveRepositoryImpl) List(ctx context.Context) ([]medical.MedicalLeave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+medicalLeaveColumns+`, u.first_name || ' ' || u.last_name
		FROM medical_leaves m
		JOIN users u ON u.id = m.employee_id
		ORDER BY m.start_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []medical.MedicalLeave
	for rows.Next() {
		m, err := scanMedicalLeave(rows, true)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, m)
	}

	return leaves, rows.Err()
}

// CoveringExists implements medical.MedicalLeaveRepository.
func (r *medicalLeaveRepositoryImpl) CoveringExists(ctx context.Context, employeeID string, date time.Time, lookbackDays int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Leaves starting before the lookback window are not considered, even if
	// their duration would still cover the date.
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM medical_leaves
			WHERE employee_id = $1
			  AND start_date >= $2::date - $3 * INTERVAL '1 day'
			  AND start_date <= $2
			  AND $2 <= start_date + (days - 1) * INTERVAL '1 day'
		)
	`
	var exists bool
	err := q.QueryRow(ctx, query, employeeID, date, lookbackDays).Scan(&exists)
	return exists, err
}

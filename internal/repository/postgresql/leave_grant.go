package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type grantRepositoryImpl struct {
	db *database.DB
}

func NewGrantRepository(db *database.DB) leave.GrantRepository {
	return &grantRepositoryImpl{db: db}
}

const grantColumns = `g.id, g.employee_id, g.created_by, g.start_date, g.end_date, g.duration_days, g.session,
	g.status, g.reason, g.rejection_reason, g.cancellation_reason, g.cancelled_by, g.cancelled_at,
	g.approved_by, g.approved_at, g.created_at, g.updated_at`

func scanGrant(row pgx.Row, withName bool) (leave.Grant, error) {
	var g leave.Grant
	dest := []interface{}{
		&g.ID,
		&g.EmployeeID,
		&g.CreatedBy,
		&g.StartDate,
		&g.EndDate,
		&g.DurationDays,
		&g.Session,
		&g.Status,
		&g.Reason,
		&g.RejectionReason,
		&g.CancellationReason,
		&g.CancelledBy,
		&g.CancelledAt,
		&g.ApprovedBy,
		&g.ApprovedAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	}
	if withName {
		dest = append(dest, &g.EmployeeName)
	}
	err := row.Scan(dest...)
	return g, err
}

// Create implements leave.GrantRepository.
func (r *grantRepositoryImpl) Create(ctx context.Context, g leave.Grant) (leave.Grant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_grants (id, employee_id, created_by, start_date, end_date, duration_days, session,
			status, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, employee_id, created_by, start_date, end_date, duration_days, session,
			status, reason, rejection_reason, cancellation_reason, cancelled_by, cancelled_at,
			approved_by, approved_at, created_at, updated_at
	`
	return scanGrant(q.QueryRow(ctx, query,
		uuid.NewString(),
		g.EmployeeID,
		g.CreatedBy,
		g.StartDate,
		g.EndDate,
		g.DurationDays,
		g.Session,
		g.Status,
		g.Reason,
	), false)
}

// GetByID implements leave.GrantRepository.
func (r *grantRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Grant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + grantColumns + `, u.first_name || ' ' || u.last_name
		FROM leave_grants g
		JOIN users u ON u.id = g.employee_id
		WHERE g.id = $1
	`
	return scanGrant(q.QueryRow(ctx, query, id), true)
}

// Update implements leave.GrantRepository.
func (r *grantRepositoryImpl) Update(ctx context.Context, g leave.Grant) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_grants
		SET status = $1, rejection_reason = $2, cancellation_reason = $3, cancelled_by = $4,
			cancelled_at = $5, approved_by = $6, approved_at = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := q.Exec(ctx, query,
		g.Status,
		g.RejectionReason,
		g.CancellationReason,
		g.CancelledBy,
		g.CancelledAt,
		g.ApprovedBy,
		g.ApprovedAt,
		g.ID,
	)
	return err
}

func grantFilterClauses(filter leave.GrantFilter, args []interface{}) (string, []interface{}) {
	where := ""
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND g.status = $%d", len(args))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(" AND g.end_date >= $%d", len(args))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(" AND g.start_date <= $%d", len(args))
	}
	return where, args
}

func (r *grantRepositoryImpl) list(ctx context.Context, baseWhere string, baseArgs []interface{}, filter leave.GrantFilter) ([]leave.Grant, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := grantFilterClauses(filter, baseArgs)
	where = baseWhere + where

	var total int64
	countQuery := `SELECT COUNT(*) FROM leave_grants g WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+grantColumns+`, u.first_name || ' ' || u.last_name
		FROM leave_grants g
		JOIN users u ON u.id = g.employee_id
		WHERE `+where+`
		ORDER BY g.created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var grants []leave.Grant
	for rows.Next() {
		g, err := scanGrant(rows, true)
		if err != nil {
			return nil, 0, err
		}
		grants = append(grants, g)
	}

	return grants, total, rows.Err()
}

// List implements leave.GrantRepository.
func (r *grantRepositoryImpl) List(ctx context.Context, filter leave.GrantFilter) ([]leave.Grant, int64, error) {
	return r.list(ctx, "TRUE", nil, filter)
}

// ListByEmployee implements leave.GrantRepository.
func (r *grantRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.GrantFilter) ([]leave.Grant, int64, error) {
	return r.list(ctx, "g.employee_id = $1", []interface{}{employeeID}, filter)
}

// ApprovedCovering implements leave.GrantRepository.
func (r *grantRepositoryImpl) ApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]leave.Grant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + grantColumns + `
		FROM leave_grants g
		WHERE g.employee_id = $1
		  AND g.status = 'approved'
		  AND g.start_date <= $2
		  AND g.end_date >= $2
		ORDER BY g.start_date
	`
	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []leave.Grant
	for rows.Next() {
		g, err := scanGrant(rows, false)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}

	return grants, rows.Err()
}

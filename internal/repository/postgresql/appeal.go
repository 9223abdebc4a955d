package postgresql

import (
	"context"
	"fmt"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type appealRepositoryImpl struct {
	db *database.DB
}

func NewAppealRepository(db *database.DB) attendance.AppealRepository {
	return &appealRepositoryImpl{db: db}
}

const appealColumns = `ap.id, ap.record_id, ap.reason, ap.status, ap.admin_response,
	ap.reviewed_by, ap.reviewed_at, ap.created_at`

func scanAppeal(row pgx.Row, withRecord bool) (attendance.Appeal, error) {
	var a attendance.Appeal
	dest := []interface{}{
		&a.ID,
		&a.RecordID,
		&a.Reason,
		&a.Status,
		&a.AdminResponse,
		&a.ReviewedBy,
		&a.ReviewedAt,
		&a.CreatedAt,
	}
	if withRecord {
		dest = append(dest, &a.EmployeeID, &a.RecordDate, &a.RecordStatus, &a.EmployeeName)
	}
	err := row.Scan(dest...)
	return a, err
}

// Create implements attendance.AppealRepository.
func (r *appealRepositoryImpl) Create(ctx context.Context, appeal attendance.Appeal) (attendance.Appeal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_appeals (id, record_id, reason, status, admin_response, created_at)
		VALUES ($1, $2, $3, $4, '', NOW())
		RETURNING id, record_id, reason, status, admin_response, reviewed_by, reviewed_at, created_at
	`
	return scanAppeal(q.QueryRow(ctx, query,
		uuid.NewString(),
		appeal.RecordID,
		appeal.Reason,
		appeal.Status,
	), false)
}

// GetByID implements attendance.AppealRepository.
func (r *appealRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Appeal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + appealColumns + `, a.employee_id, a.date, a.status, u.first_name || ' ' || u.last_name
		FROM attendance_appeals ap
		JOIN attendance_records a ON a.id = ap.record_id
		JOIN users u ON u.id = a.employee_id
		WHERE ap.id = $1
	`
	return scanAppeal(q.QueryRow(ctx, query, id), true)
}

// ExistsForRecord implements attendance.AppealRepository.
func (r *appealRepositoryImpl) ExistsForRecord(ctx context.Context, recordID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance_appeals WHERE record_id = $1)`, recordID).Scan(&exists)
	return exists, err
}

// Update implements attendance.AppealRepository.
func (r *appealRepositoryImpl) Update(ctx context.Context, appeal attendance.Appeal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_appeals
		SET status = $1, admin_response = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query,
		appeal.Status,
		appeal.AdminResponse,
		appeal.ReviewedBy,
		appeal.ReviewedAt,
		appeal.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAppealNotFound
	}
	return nil
}

func (r *appealRepositoryImpl) list(ctx context.Context, baseWhere string, baseArgs []interface{}, filter attendance.AppealFilter) ([]attendance.Appeal, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := baseWhere
	args := baseArgs

	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND ap.status = $%d", len(args))
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(" AND a.employee_id = $%d", len(args))
	}

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM attendance_appeals ap
		JOIN attendance_records a ON a.id = ap.record_id
		WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT `+appealColumns+`, a.employee_id, a.date, a.status, u.first_name || ' ' || u.last_name
		FROM attendance_appeals ap
		JOIN attendance_records a ON a.id = ap.record_id
		JOIN users u ON u.id = a.employee_id
		WHERE `+where+`
		ORDER BY ap.created_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var appeals []attendance.Appeal
	for rows.Next() {
		a, err := scanAppeal(rows, true)
		if err != nil {
			return nil, 0, err
		}
		appeals = append(appeals, a)
	}

	return appeals, total, rows.Err()
}

// List implements attendance.AppealRepository.
func (r *appealRepositoryImpl) List(ctx context.Context, filter attendance.AppealFilter) ([]attendance.Appeal, int64, error) {
	return r.list(ctx, "TRUE", nil, filter)
}

// ListByEmployee implements attendance.AppealRepository.
func (r *appealRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AppealFilter) ([]attendance.Appeal, int64, error) {
	return r.list(ctx, "a.employee_id = $1", []interface{}{employeeID}, filter)
}

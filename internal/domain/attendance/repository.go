package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access methods for attendance records.
type RecordRepository interface {
	// Upsert inserts or replaces the record for (employee, date).
	Upsert(ctx context.Context, record Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	Update(ctx context.Context, record Record) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	// ListByEmployeeBetween returns the employee's records with
	// from <= date <= to, ordered by date.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// ListByDate returns every record for the given date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// EmployeesWithoutRecord returns the IDs of active employees holding an
	// active schedule that have no record for the date.
	EmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error)
}

// AppealRepository defines data access methods for attendance appeals.
type AppealRepository interface {
	Create(ctx context.Context, appeal Appeal) (Appeal, error)

	GetByID(ctx context.Context, id string) (Appeal, error)

	// ExistsForRecord reports whether the record already has an appeal.
	ExistsForRecord(ctx context.Context, recordID string) (bool, error)

	Update(ctx context.Context, appeal Appeal) error

	List(ctx context.Context, filter AppealFilter) ([]Appeal, int64, error)

	ListByEmployee(ctx context.Context, employeeID string, filter AppealFilter) ([]Appeal, int64, error)
}

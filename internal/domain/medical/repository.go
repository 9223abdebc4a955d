package medical

import (
	"context"
	"time"
)

// MedicalLeaveRepository defines data access methods for medical leaves.
type MedicalLeaveRepository interface {
	Create(ctx context.Context, m MedicalLeave) (MedicalLeave, error)
	GetByID(ctx context.Context, id string) (MedicalLeave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]MedicalLeave, error)
	List(ctx context.Context) ([]MedicalLeave, error)

	// CoveringExists reports whether a medical leave covers the given date.
	// Only leaves whose start date falls within lookbackDays before the date
	// are considered.
	CoveringExists(ctx context.Context, employeeID string, date time.Time, lookbackDays int) (bool, error)
}

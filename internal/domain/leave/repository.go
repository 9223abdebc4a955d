package leave

import (
	"context"
	"time"
)

// GrantRepository defines data access methods for leave grants.
type GrantRepository interface {
	Create(ctx context.Context, g Grant) (Grant, error)
	GetByID(ctx context.Context, id string) (Grant, error)
	Update(ctx context.Context, g Grant) error
	List(ctx context.Context, filter GrantFilter) ([]Grant, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, filter GrantFilter) ([]Grant, int64, error)

	// ApprovedCovering returns the approved grants of the employee whose
	// [start, end] range includes the date.
	ApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]Grant, error)
}

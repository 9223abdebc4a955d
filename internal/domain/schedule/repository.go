package schedule

import "context"

// WorkScheduleRepository defines data access methods for work schedules.
type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	Update(ctx context.Context, ws WorkSchedule) error
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkSchedule, error)
	List(ctx context.Context) ([]WorkSchedule, error)

	// ActiveFor returns the employee's active schedule, or nil when none is
	// active. If several are active the most recently activated one wins.
	ActiveFor(ctx context.Context, employeeID string) (*WorkSchedule, error)

	// DeactivateAllFor marks every schedule of the employee inactive; used
	// before activating a replacement.
	DeactivateAllFor(ctx context.Context, employeeID string) error
}

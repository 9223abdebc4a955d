package schedule

import "context"

// WorkScheduleService defines business logic for work schedule management.
type WorkScheduleService interface {
	// UpsertSchedule activates a new schedule for the employee, deactivating
	// any previous one.
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)

	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)

	ListSchedules(ctx context.Context) ([]ScheduleResponse, error)

	ListEmployeeSchedules(ctx context.Context, employeeID string) ([]ScheduleResponse, error)

	// DeactivateSchedules clears the employee's active schedule so their days
	// resolve as unscheduled.
	DeactivateSchedules(ctx context.Context, employeeID string) error
}

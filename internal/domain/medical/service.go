package medical

import "context"

// MedicalLeaveService defines business logic for medical leave registration.
type MedicalLeaveService interface {
	// CreateMedicalLeave registers a leave and re-resolves the attendance
	// records it covers.
	CreateMedicalLeave(ctx context.Context, req CreateMedicalLeaveRequest) (MedicalLeaveResponse, error)

	GetMedicalLeave(ctx context.Context, id string) (MedicalLeaveResponse, error)

	ListMedicalLeaves(ctx context.Context) ([]MedicalLeaveResponse, error)

	ListEmployeeMedicalLeaves(ctx context.Context, employeeID string) ([]MedicalLeaveResponse, error)
}

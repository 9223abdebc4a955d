package medical

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/medical"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type MedicalLeaveServiceImpl struct {
	medical.MedicalLeaveRepository
	records attendance.RecordService
}

func NewMedicalLeaveService(medicalRepository medical.MedicalLeaveRepository, recordService attendance.RecordService) medical.MedicalLeaveService {
	return &MedicalLeaveServiceImpl{
		MedicalLeaveRepository: medicalRepository,
		records:                recordService,
	}
}

func toMedicalLeaveResponse(m medical.MedicalLeave) medical.MedicalLeaveResponse {
	return medical.MedicalLeaveResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		StartDate:    m.StartDate.Format("2006-01-02"),
		EndDate:      m.EndDate().Format("2006-01-02"),
		Days:         m.Days,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}

// CreateMedicalLeave implements medical.MedicalLeaveService.
func (s *MedicalLeaveServiceImpl) CreateMedicalLeave(ctx context.Context, req medical.CreateMedicalLeaveRequest) (medical.MedicalLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return medical.MedicalLeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return medical.MedicalLeaveResponse{}, fmt.Errorf("invalid start_date: %w", err)
	}

	m := medical.MedicalLeave{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		Days:       req.Days,
	}
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if actorID, ok := claims["user_id"].(string); ok && actorID != "" {
			m.CreatedBy = &actorID
		}
	}

	created, err := s.MedicalLeaveRepository.Create(ctx, m)
	if err != nil {
		return medical.MedicalLeaveResponse{}, fmt.Errorf("failed to create medical leave: %w", err)
	}

	// The covered days may already hold absent or late records; re-resolve
	// them so the leave takes effect retroactively.
	if s.records != nil {
		if _, err := s.records.RecomputeRange(ctx, created.EmployeeID, created.StartDate, created.EndDate()); err != nil {
			return medical.MedicalLeaveResponse{}, fmt.Errorf("failed to recompute covered records: %w", err)
		}
	}

	return toMedicalLeaveResponse(created), nil
}

// GetMedicalLeave implements medical.MedicalLeaveService.
func (s *MedicalLeaveServiceImpl) GetMedicalLeave(ctx context.Context, id string) (medical.MedicalLeaveResponse, error) {
	m, err := s.MedicalLeaveRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return medical.MedicalLeaveResponse{}, medical.ErrMedicalLeaveNotFound
		}
		return medical.MedicalLeaveResponse{}, fmt.Errorf("failed to get medical leave: %w", err)
	}
	return toMedicalLeaveResponse(m), nil
}

// ListMedicalLeaves implements medical.MedicalLeaveService.
func (s *MedicalLeaveServiceImpl) ListMedicalLeaves(ctx context.Context) ([]medical.MedicalLeaveResponse, error) {
	leaves, err := s.MedicalLeaveRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical leaves: %w", err)
	}

	responses := make([]medical.MedicalLeaveResponse, 0, len(leaves))
	for _, m := range leaves {
		responses = append(responses, toMedicalLeaveResponse(m))
	}
	return responses, nil
}

// ListEmployeeMedicalLeaves implements medical.MedicalLeaveService.
func (s *MedicalLeaveServiceImpl) ListEmployeeMedicalLeaves(ctx context.Context, employeeID string) ([]medical.MedicalLeaveResponse, error) {
	leaves, err := s.MedicalLeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical leaves: %w", err)
	}

	responses := make([]medical.MedicalLeaveResponse, 0, len(leaves))
	for _, m := range leaves {
		responses = append(responses, toMedicalLeaveResponse(m))
	}
	return responses, nil
}

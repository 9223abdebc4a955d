package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/schedule"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/colegio-admin/staff-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

const defaultToleranceMinutes = 15

type WorkScheduleServiceImpl struct {
	db *database.DB
	schedule.WorkScheduleRepository
}

func NewWorkScheduleService(db *database.DB, scheduleRepository schedule.WorkScheduleRepository) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		db:                     db,
		WorkScheduleRepository: scheduleRepository,
	}
}

func toScheduleResponse(ws schedule.WorkSchedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		ID:               ws.ID,
		EmployeeID:       ws.EmployeeID,
		StartTime:        ws.StartTime.Format("15:04:05"),
		ToleranceMinutes: ws.ToleranceMinutes,
		Active:           ws.Active,
	}
	if ws.ActivatedAt != nil {
		s := ws.ActivatedAt.Format(time.RFC3339)
		resp.ActivatedAt = &s
	}
	return resp
}

// UpsertSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	startTime, err := time.Parse("15:04:05", req.StartTime)
	if err != nil {
		startTime, err = time.Parse("15:04", req.StartTime)
		if err != nil {
			return schedule.ScheduleResponse{}, fmt.Errorf("invalid start_time: %w", err)
		}
	}

	tolerance := defaultToleranceMinutes
	if req.ToleranceMinutes != nil {
		tolerance = *req.ToleranceMinutes
	}

	var created schedule.WorkSchedule
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.WorkScheduleRepository.DeactivateAllFor(txCtx, req.EmployeeID); err != nil {
			return fmt.Errorf("failed to deactivate previous schedules: %w", err)
		}

		now := time.Now()
		created, err = s.WorkScheduleRepository.Create(txCtx, schedule.WorkSchedule{
			EmployeeID:       req.EmployeeID,
			StartTime:        startTime,
			ToleranceMinutes: tolerance,
			Active:           true,
			ActivatedAt:      &now,
		})
		if err != nil {
			return fmt.Errorf("failed to create work schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toScheduleResponse(created), nil
}

// GetSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	ws, err := s.WorkScheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ScheduleResponse{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return toScheduleResponse(ws), nil
}

// ListSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) ListSchedules(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.WorkScheduleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, toScheduleResponse(ws))
	}
	return responses, nil
}

// ListEmployeeSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) ListEmployeeSchedules(ctx context.Context, employeeID string) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.WorkScheduleRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, toScheduleResponse(ws))
	}
	return responses, nil
}

// DeactivateSchedules implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) DeactivateSchedules(ctx context.Context, employeeID string) error {
	if err := s.WorkScheduleRepository.DeactivateAllFor(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to deactivate schedules: %w", err)
	}
	return nil
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

// RecordJustifier is the slice of the record service the appeal workflow
// needs: approving an appeal justifies the underlying record through the
// normal resolution path.
type RecordJustifier interface {
	Justify(ctx context.Context, req attendance.JustifyRequest) (attendance.RecordResponse, error)
}

type AppealServiceImpl struct {
	attendance.AppealRepository
	records   attendance.RecordRepository
	justifier RecordJustifier
}

func NewAppealService(appealRepository attendance.AppealRepository, recordRepository attendance.RecordRepository, justifier RecordJustifier) attendance.AppealService {
	return &AppealServiceImpl{
		AppealRepository: appealRepository,
		records:          recordRepository,
		justifier:        justifier,
	}
}

func toAppealResponse(a attendance.Appeal) attendance.AppealResponse {
	resp := attendance.AppealResponse{
		ID:            a.ID,
		RecordID:      a.RecordID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		RecordStatus:  string(a.RecordStatus),
		Reason:        a.Reason,
		Status:        string(a.Status),
		AdminResponse: a.AdminResponse,
		ReviewedBy:    a.ReviewedBy,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
	if !a.RecordDate.IsZero() {
		resp.RecordDate = a.RecordDate.Format("2006-01-02")
	}
	if a.ReviewedAt != nil {
		s := a.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}

// CreateAppeal implements attendance.AppealService.
func (s *AppealServiceImpl) CreateAppeal(ctx context.Context, req attendance.CreateAppealRequest) (attendance.AppealResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AppealResponse{}, err
	}

	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AppealResponse{}, err
	}

	rec, err := s.records.GetByID(ctx, req.RecordID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AppealResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AppealResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	// Appeals are strictly first-person, regardless of role.
	if rec.EmployeeID != actorID {
		return attendance.AppealResponse{}, attendance.ErrUnauthorized
	}
	if !rec.CanBeAppealed() {
		return attendance.AppealResponse{}, attendance.ErrRecordNotAppealable
	}

	exists, err := s.AppealRepository.ExistsForRecord(ctx, rec.ID)
	if err != nil {
		return attendance.AppealResponse{}, fmt.Errorf("failed to check for existing appeal: %w", err)
	}
	if exists {
		return attendance.AppealResponse{}, attendance.ErrAppealExists
	}

	created, err := s.AppealRepository.Create(ctx, attendance.Appeal{
		RecordID: rec.ID,
		Reason:   req.Reason,
		Status:   attendance.AppealStatusPending,
	})
	if err != nil {
		return attendance.AppealResponse{}, fmt.Errorf("failed to create appeal: %w", err)
	}

	created.EmployeeID = rec.EmployeeID
	created.RecordDate = rec.Date
	created.RecordStatus = rec.Status
	return toAppealResponse(created), nil
}

// ListAppeals implements attendance.AppealService.
func (s *AppealServiceImpl) ListAppeals(ctx context.Context, filter attendance.AppealFilter) (attendance.ListAppealsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAppealsResponse{}, err
	}

	appeals, total, err := s.AppealRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAppealsResponse{}, fmt.Errorf("failed to list appeals: %w", err)
	}

	return buildAppealListResponse(appeals, total, filter), nil
}

// ListMyAppeals implements attendance.AppealService.
func (s *AppealServiceImpl) ListMyAppeals(ctx context.Context, filter attendance.AppealFilter) (attendance.ListAppealsResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListAppealsResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return attendance.ListAppealsResponse{}, err
	}

	appeals, total, err := s.AppealRepository.ListByEmployee(ctx, userID, filter)
	if err != nil {
		return attendance.ListAppealsResponse{}, fmt.Errorf("failed to list appeals: %w", err)
	}

	return buildAppealListResponse(appeals, total, filter), nil
}

func buildAppealListResponse(appeals []attendance.Appeal, total int64, filter attendance.AppealFilter) attendance.ListAppealsResponse {
	resp := attendance.ListAppealsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Appeals:    make([]attendance.AppealResponse, 0, len(appeals)),
	}
	for _, a := range appeals {
		resp.Appeals = append(resp.Appeals, toAppealResponse(a))
	}
	return resp
}

// GetAppeal implements attendance.AppealService.
func (s *AppealServiceImpl) GetAppeal(ctx context.Context, id string) (attendance.AppealResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AppealResponse{}, err
	}

	appeal, err := s.AppealRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AppealResponse{}, attendance.ErrAppealNotFound
		}
		return attendance.AppealResponse{}, fmt.Errorf("failed to get appeal: %w", err)
	}

	if role == string(user.RoleFuncionario) && appeal.EmployeeID != userID {
		return attendance.AppealResponse{}, attendance.ErrUnauthorized
	}

	return toAppealResponse(appeal), nil
}

// ReviewAppeal implements attendance.AppealService.
func (s *AppealServiceImpl) ReviewAppeal(ctx context.Context, req attendance.ReviewAppealRequest) (attendance.AppealResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AppealResponse{}, err
	}

	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AppealResponse{}, err
	}

	appeal, err := s.AppealRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AppealResponse{}, attendance.ErrAppealNotFound
		}
		return attendance.AppealResponse{}, fmt.Errorf("failed to get appeal: %w", err)
	}

	if appeal.Status != attendance.AppealStatusPending {
		return attendance.AppealResponse{}, attendance.ErrAppealAlreadyReviewed
	}

	now := time.Now()
	if req.Action == attendance.AppealActionApprove {
		appeal.Status = attendance.AppealStatusApproved
	} else {
		appeal.Status = attendance.AppealStatusRejected
	}
	appeal.AdminResponse = req.Response
	appeal.ReviewedBy = &actorID
	appeal.ReviewedAt = &now

	if err := s.AppealRepository.Update(ctx, appeal); err != nil {
		return attendance.AppealResponse{}, fmt.Errorf("failed to update appeal: %w", err)
	}

	// An approved appeal justifies the record; the resolver still has the
	// last word on the final status.
	if appeal.Status == attendance.AppealStatusApproved && s.justifier != nil {
		_, err := s.justifier.Justify(ctx, attendance.JustifyRequest{
			ID:            appeal.RecordID,
			Justification: fmt.Sprintf("Appeal approved: %s", req.Response),
		})
		if err != nil {
			return attendance.AppealResponse{}, fmt.Errorf("failed to justify appealed record: %w", err)
		}
	}

	return toAppealResponse(appeal), nil
}

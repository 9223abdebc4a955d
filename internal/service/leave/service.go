package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/domain/user"
	"github.com/colegio-admin/staff-backend-go/internal/service/businessday"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type GrantServiceImpl struct {
	leave.GrantRepository
	calculator *businessday.Calculator
	records    attendance.RecordService
}

func NewGrantService(grantRepository leave.GrantRepository, calculator *businessday.Calculator, recordService attendance.RecordService) leave.GrantService {
	return &GrantServiceImpl{
		GrantRepository: grantRepository,
		calculator:      calculator,
		records:         recordService,
	}
}

func claimsFromContext(ctx context.Context) (userID, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	role, _ = claims["role"].(string)
	return userID, role, nil
}

func toGrantResponse(g leave.Grant) leave.GrantResponse {
	resp := leave.GrantResponse{
		ID:                 g.ID,
		EmployeeID:         g.EmployeeID,
		EmployeeName:       g.EmployeeName,
		StartDate:          g.StartDate.Format("2006-01-02"),
		EndDate:            g.EndDate.Format("2006-01-02"),
		DurationDays:       g.DurationDays,
		Session:            string(g.Session),
		Status:             string(g.Status),
		Reason:             g.Reason,
		RejectionReason:    g.RejectionReason,
		CancellationReason: g.CancellationReason,
		ApprovedBy:         g.ApprovedBy,
		CreatedAt:          g.CreatedAt.Format(time.RFC3339),
	}
	if g.ApprovedAt != nil {
		s := g.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &s
	}
	return resp
}

// CreateGrant implements leave.GrantService.
func (s *GrantServiceImpl) CreateGrant(ctx context.Context, req leave.CreateGrantRequest) (leave.GrantResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.GrantResponse{}, err
	}
	if !leave.IsAllowedDuration(req.DurationDays) {
		return leave.GrantResponse{}, leave.ErrInvalidDuration
	}

	actorID, role, err := claimsFromContext(ctx)
	if err != nil {
		return leave.GrantResponse{}, err
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = actorID
	}
	if role == string(user.RoleFuncionario) && employeeID != actorID {
		return leave.GrantResponse{}, leave.ErrUnauthorized
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.GrantResponse{}, fmt.Errorf("invalid start_date: %w", err)
	}

	endDate, err := s.calculator.CalculateEndDate(ctx, startDate, req.DurationDays)
	if err != nil {
		return leave.GrantResponse{}, err
	}

	grant := leave.Grant{
		EmployeeID:   employeeID,
		CreatedBy:    &actorID,
		StartDate:    startDate,
		EndDate:      endDate,
		DurationDays: req.DurationDays,
		Session:      leave.Session(strings.ToUpper(req.Session)),
		Status:       leave.GrantStatusPending,
		Reason:       req.Reason,
	}

	created, err := s.GrantRepository.Create(ctx, grant)
	if err != nil {
		return leave.GrantResponse{}, fmt.Errorf("failed to create leave grant: %w", err)
	}

	return toGrantResponse(created), nil
}

// ListGrants implements leave.GrantService.
func (s *GrantServiceImpl) ListGrants(ctx context.Context, filter leave.GrantFilter) (leave.ListGrantsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListGrantsResponse{}, err
	}

	grants, total, err := s.GrantRepository.List(ctx, filter)
	if err != nil {
		return leave.ListGrantsResponse{}, fmt.Errorf("failed to list leave grants: %w", err)
	}

	return buildListResponse(grants, total, filter), nil
}

// ListMyGrants implements leave.GrantService.
func (s *GrantServiceImpl) ListMyGrants(ctx context.Context, filter leave.GrantFilter) (leave.ListGrantsResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.ListGrantsResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return leave.ListGrantsResponse{}, err
	}

	grants, total, err := s.GrantRepository.ListByEmployee(ctx, userID, filter)
	if err != nil {
		return leave.ListGrantsResponse{}, fmt.Errorf("failed to list leave grants: %w", err)
	}

	return buildListResponse(grants, total, filter), nil
}

func buildListResponse(grants []leave.Grant, total int64, filter leave.GrantFilter) leave.ListGrantsResponse {
	resp := leave.ListGrantsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Grants:     make([]leave.GrantResponse, 0, len(grants)),
	}
	for _, g := range grants {
		resp.Grants = append(resp.Grants, toGrantResponse(g))
	}
	return resp
}

// GetGrant implements leave.GrantService.
func (s *GrantServiceImpl) GetGrant(ctx context.Context, id string) (leave.GrantResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return leave.GrantResponse{}, err
	}

	grant, err := s.GrantRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.GrantResponse{}, leave.ErrGrantNotFound
		}
		return leave.GrantResponse{}, fmt.Errorf("failed to get leave grant: %w", err)
	}

	if role == string(user.RoleFuncionario) && grant.EmployeeID != userID {
		return leave.GrantResponse{}, leave.ErrUnauthorized
	}

	return toGrantResponse(grant), nil
}

// ApproveGrant implements leave.GrantService.
func (s *GrantServiceImpl) ApproveGrant(ctx context.Context, id string) (leave.GrantResponse, error) {
	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.GrantResponse{}, err
	}

	grant, err := s.GrantRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.GrantResponse{}, leave.ErrGrantNotFound
		}
		return leave.GrantResponse{}, fmt.Errorf("failed to get leave grant: %w", err)
	}

	if grant.Status != leave.GrantStatusPending {
		return leave.GrantResponse{}, leave.ErrGrantAlreadyProcessed
	}

	now := time.Now()
	grant.Status = leave.GrantStatusApproved
	grant.ApprovedBy = &actorID
	grant.ApprovedAt = &now

	if err := s.GrantRepository.Update(ctx, grant); err != nil {
		return leave.GrantResponse{}, fmt.Errorf("failed to update leave grant: %w", err)
	}

	// Approval may arrive after the covered days were already ingested;
	// re-resolve them so the grant takes effect retroactively.
	if s.records != nil {
		if _, err := s.records.RecomputeRange(ctx, grant.EmployeeID, grant.StartDate, grant.EndDate); err != nil {
			return leave.GrantResponse{}, fmt.Errorf("failed to recompute covered records: %w", err)
		}
	}

	return toGrantResponse(grant), nil
}

// RejectGrant implements leave.GrantService.
func (s *GrantServiceImpl) RejectGrant(ctx context.Context, req leave.RejectGrantRequest) (leave.GrantResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.GrantResponse{}, err
	}

	grant, err := s.GrantRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.GrantResponse{}, leave.ErrGrantNotFound
		}
		return leave.GrantResponse{}, fmt.Errorf("failed to get leave grant: %w", err)
	}

	if grant.Status != leave.GrantStatusPending {
		return leave.GrantResponse{}, leave.ErrGrantAlreadyProcessed
	}

	grant.Status = leave.GrantStatusRejected
	grant.RejectionReason = req.Reason

	if err := s.GrantRepository.Update(ctx, grant); err != nil {
		return leave.GrantResponse{}, fmt.Errorf("failed to update leave grant: %w", err)
	}

	return toGrantResponse(grant), nil
}

// CancelGrant implements leave.GrantService.
func (s *GrantServiceImpl) CancelGrant(ctx context.Context, req leave.CancelGrantRequest) (leave.GrantResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.GrantResponse{}, err
	}

	actorID, role, err := claimsFromContext(ctx)
	if err != nil {
		return leave.GrantResponse{}, err
	}

	grant, err := s.GrantRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.GrantResponse{}, leave.ErrGrantNotFound
		}
		return leave.GrantResponse{}, fmt.Errorf("failed to get leave grant: %w", err)
	}

	// Only reviewer roles may cancel on behalf of someone else.
	if role == string(user.RoleFuncionario) && grant.EmployeeID != actorID {
		return leave.GrantResponse{}, leave.ErrUnauthorized
	}

	wasApproved := grant.Status == leave.GrantStatusApproved
	if grant.Status != leave.GrantStatusPending && !wasApproved {
		return leave.GrantResponse{}, leave.ErrGrantNotCancellable
	}

	now := time.Now()
	grant.Status = leave.GrantStatusCancelled
	grant.CancellationReason = req.Reason
	grant.CancelledBy = &actorID
	grant.CancelledAt = &now

	if err := s.GrantRepository.Update(ctx, grant); err != nil {
		return leave.GrantResponse{}, fmt.Errorf("failed to update leave grant: %w", err)
	}

	// Cancelling an already-approved grant un-covers its days.
	if wasApproved && s.records != nil {
		if _, err := s.records.RecomputeRange(ctx, grant.EmployeeID, grant.StartDate, grant.EndDate); err != nil {
			return leave.GrantResponse{}, fmt.Errorf("failed to recompute covered records: %w", err)
		}
	}

	return toGrantResponse(grant), nil
}

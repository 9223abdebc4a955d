package leave

import (
	"strings"

	"github.com/colegio-admin/staff-backend-go/internal/pkg/validator"
)

type CreateGrantRequest struct {
	EmployeeID   string  `json:"employee_id,omitempty"` // defaults to the requester
	StartDate    string  `json:"start_date"`            // YYYY-MM-DD
	DurationDays float64 `json:"duration_days"`
	Session      string  `json:"session,omitempty"` // AM, PM or FD
	Reason       string  `json:"reason,omitempty"`
}

func (r *CreateGrantRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.Session == "" {
		r.Session = string(SessionFullDay)
	}
	if !validator.IsInSlice(strings.ToUpper(r.Session), SessionValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "session",
			Message: "session must be one of: AM, PM, FD",
		})
	}
	if r.DurationDays != 0.5 && strings.ToUpper(r.Session) != string(SessionFullDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "session",
			Message: "session only applies to half-day requests",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GrantFilter struct {
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *GrantFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{"pending", "approved", "rejected", "cancelled"}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected, cancelled",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectGrantRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectGrantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CancelGrantRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *CancelGrantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "cancellation reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GrantResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationDays float64 `json:"duration_days"`
	Session      string  `json:"session"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason,omitempty"`

	RejectionReason    string  `json:"rejection_reason,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
	ApprovedBy         *string `json:"approved_by,omitempty"`
	ApprovedAt         *string `json:"approved_at,omitempty"`

	CreatedAt string `json:"created_at"`
}

type ListGrantsResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Grants     []GrantResponse `json:"grants"`
}

package attendance

import (
	"github.com/colegio-admin/staff-backend-go/internal/pkg/validator"
)

// IngestPunchRequest carries already-parsed clock punches for one employee
// and date. Parsing of clock-export files happens upstream.
type IngestPunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`                // YYYY-MM-DD
	ClockIn    *string `json:"clock_in,omitempty"`  // HH:MM or HH:MM:SS
	ClockOut   *string `json:"clock_out,omitempty"` // HH:MM or HH:MM:SS
}

func (r *IngestPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.ClockIn != nil && *r.ClockIn != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ClockIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.ClockOut != nil && *r.ClockOut != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.ClockOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// JustifyRequest attaches a manual justification to a record.
type JustifyRequest struct {
	ID            string `json:"-"`
	Justification string `json:"justification"`
}

func (r *JustifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *RecordFilter) Validate() error {
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

	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a valid attendance status",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
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

type RecordResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name,omitempty"`
	Date                string  `json:"date"`
	ClockIn             *string `json:"clock_in,omitempty"`
	ClockOut            *string `json:"clock_out,omitempty"`
	Status              string  `json:"status"`
	LatenessMinutes     int     `json:"lateness_minutes"`
	WorkedMinutes       *int    `json:"worked_minutes,omitempty"`
	ManualJustification string  `json:"manual_justification,omitempty"`
	JustifiedBy         *string `json:"justified_by,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// SummaryRequest asks for one employee's aggregate over an inclusive range.
type SummaryRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, validStart := validator.IsValidDate(r.StartDate)
	if !validStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, validEnd := validator.IsValidDate(r.EndDate)
	if !validEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validStart && validEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryResponse struct {
	EmployeeID           string         `json:"employee_id"`
	StartDate            string         `json:"start_date"`
	EndDate              string         `json:"end_date"`
	BusinessDays         int            `json:"business_days"`
	StatusCounts         map[string]int `json:"status_counts"`
	TotalLatenessMinutes int            `json:"total_lateness_minutes"`
	TotalWorkedMinutes   int            `json:"total_worked_minutes"`
}

// CreateAppealRequest opens an appeal on the requester's own record.
type CreateAppealRequest struct {
	RecordID string `json:"-"`
	Reason   string `json:"reason"`
}

func (r *CreateAppealRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

const (
	AppealActionApprove = "approve"
	AppealActionReject  = "reject"
)

// ReviewAppealRequest resolves a pending appeal. A response to the employee
// is always required, matching what the reviewer would tell them in person.
type ReviewAppealRequest struct {
	ID       string `json:"-"`
	Action   string `json:"action"` // approve or reject
	Response string `json:"response"`
}

func (r *ReviewAppealRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != AppealActionApprove && r.Action != AppealActionReject {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}

	if validator.IsEmpty(r.Response) {
		errs = append(errs, validator.ValidationError{
			Field:   "response",
			Message: "response is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AppealFilter struct {
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AppealFilter) Validate() error {
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

	if f.Status != nil && !validator.IsInSlice(*f.Status, AppealStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AppealResponse struct {
	ID           string  `json:"id"`
	RecordID     string  `json:"record_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	RecordDate   string  `json:"record_date,omitempty"`
	RecordStatus string  `json:"record_status,omitempty"`

	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AdminResponse string  `json:"admin_response,omitempty"`
	ReviewedBy    *string `json:"reviewed_by,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`

	CreatedAt string `json:"created_at"`
}

type ListAppealsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Appeals    []AppealResponse `json:"appeals"`
}

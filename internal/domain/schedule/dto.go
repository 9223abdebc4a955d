package schedule

import (
	"github.com/colegio-admin/staff-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	EmployeeID       string `json:"employee_id"`
	StartTime        string `json:"start_time"` // HH:MM or HH:MM:SS
	ToleranceMinutes *int   `json:"tolerance_minutes,omitempty"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidTimeOfDay(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	StartTime        string  `json:"start_time"`
	ToleranceMinutes int     `json:"tolerance_minutes"`
	Active           bool    `json:"active"`
	ActivatedAt      *string `json:"activated_at,omitempty"`
}

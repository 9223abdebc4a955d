package response

import (
	"errors"
	"net/http"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/auth"
	"github.com/colegio-admin/staff-backend-go/internal/domain/holiday"
	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/domain/medical"
	"github.com/colegio-admin/staff-backend-go/internal/domain/schedule"
	"github.com/colegio-admin/staff-backend-go/internal/domain/user"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInactiveAccount):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrRUTExists):
		Conflict(w, "RUT already registered")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrSelfDeleteNotAllowed):
		BadRequest(w, "Cannot deactivate your own account", nil)
	case errors.Is(err, user.ErrAdminOnly),
		errors.Is(err, user.ErrReviewerOnly),
		errors.Is(err, user.ErrAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance record")
	case errors.Is(err, attendance.ErrDuplicateForDate):
		Conflict(w, "An attendance record already exists for that date")
	case errors.Is(err, attendance.ErrAppealNotFound):
		NotFound(w, "Appeal not found")
	case errors.Is(err, attendance.ErrAppealExists):
		Conflict(w, "An appeal already exists for this record")
	case errors.Is(err, attendance.ErrRecordNotAppealable):
		BadRequest(w, "Only late or absent records can be appealed", nil)
	case errors.Is(err, attendance.ErrAppealAlreadyReviewed):
		Conflict(w, "Appeal has already been reviewed")

	// Leave domain errors
	case errors.Is(err, leave.ErrGrantNotFound):
		NotFound(w, "Leave grant not found")
	case errors.Is(err, leave.ErrGrantAlreadyProcessed):
		Conflict(w, "Leave grant already processed")
	case errors.Is(err, leave.ErrGrantNotCancellable):
		Conflict(w, "Leave grant can no longer be cancelled")
	case errors.Is(err, leave.ErrInvalidDuration):
		BadRequest(w, "Requested duration is not allowed", nil)
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this leave grant")

	// Medical leave domain errors
	case errors.Is(err, medical.ErrMedicalLeaveNotFound):
		NotFound(w, "Medical leave not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDateTaken):
		Conflict(w, "A holiday already exists for that date")
	case errors.Is(err, holiday.ErrPastDate):
		BadRequest(w, "Holidays cannot be created for past dates", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrNoActiveSchedule):
		NotFound(w, "Employee has no active work schedule")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package holiday

import "context"

// HolidayService defines business logic for the holiday calendar.
type HolidayService interface {
	// CreateHoliday registers a holiday. Past dates are rejected.
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	DeleteHoliday(ctx context.Context, id string) error

	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
}

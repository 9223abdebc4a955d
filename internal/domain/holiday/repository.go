package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Holiday, error)

	// ExistsByDate reports whether date is a registered holiday.
	ExistsByDate(ctx context.Context, date time.Time) (bool, error)

	// ListBetween returns holidays with from <= date <= to, ordered by date.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}

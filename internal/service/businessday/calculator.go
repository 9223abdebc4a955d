package businessday

import (
	"context"
	"fmt"
	"time"
)

// HolidayProvider reports whether a calendar date is a registered holiday.
// holiday.HolidayRepository satisfies it; a nil provider means an empty
// holiday calendar.
type HolidayProvider interface {
	ExistsByDate(ctx context.Context, date time.Time) (bool, error)
}

// Calculator performs business-day date arithmetic. A business day is a
// Monday-to-Friday date that is not a holiday.
type Calculator struct {
	holidays HolidayProvider
}

func NewCalculator(holidays HolidayProvider) *Calculator {
	return &Calculator{holidays: holidays}
}

// IsBusinessDay reports whether date is a working day.
func (c *Calculator) IsBusinessDay(ctx context.Context, date time.Time) (bool, error) {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false, nil
	}

	if c.holidays == nil {
		return true, nil
	}

	isHoliday, err := c.holidays.ExistsByDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	return !isHoliday, nil
}

// CalculateEndDate returns the last day covered by a request of durationDays
// business days starting at startDate.
//
// Half-day requests (durationDays <= 0.5) do not shift the end date. For
// longer requests the start is first advanced to a business day, which
// consumes the first day; the remaining durationDays - 1 days are then
// consumed one calendar day at a time, decrementing only on business days.
// A request for 1 day starting on a weekend therefore ends on the following
// Monday, not on the weekend date.
func (c *Calculator) CalculateEndDate(ctx context.Context, startDate time.Time, durationDays float64) (time.Time, error) {
	if durationDays <= 0.5 {
		return startDate, nil
	}

	current := startDate
	for {
		ok, err := c.IsBusinessDay(ctx, current)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			break
		}
		current = current.AddDate(0, 0, 1)
	}

	remaining := durationDays - 1
	for remaining > 0 {
		current = current.AddDate(0, 0, 1)
		ok, err := c.IsBusinessDay(ctx, current)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			remaining--
		}
	}

	return current, nil
}

// CountBusinessDays returns the inclusive count of business days between
// start and end. It returns 0 when end precedes start.
func (c *Calculator) CountBusinessDays(ctx context.Context, start, end time.Time) (int, error) {
	count := 0
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		ok, err := c.IsBusinessDay(ctx, current)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

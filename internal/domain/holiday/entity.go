package holiday

import "time"

// Holiday is a calendar date that does not count as a working day.
type Holiday struct {
	ID          string
	Date        time.Time
	Name        string
	Description string
	CreatedBy   *string
	CreatedAt   time.Time
}

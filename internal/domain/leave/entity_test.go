package leave

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestGrantCovers(t *testing.T) {
	multiDay := Grant{
		StartDate:    date("2025-06-09"),
		EndDate:      date("2025-06-11"),
		DurationDays: 3,
		Session:      SessionFullDay,
	}
	halfAM := Grant{
		StartDate:    date("2025-06-09"),
		EndDate:      date("2025-06-09"),
		DurationDays: 0.5,
		Session:      SessionMorning,
	}

	tests := []struct {
		name    string
		grant   Grant
		day     string
		session Session
		want    bool
	}{
		{"inside range full day", multiDay, "2025-06-10", SessionFullDay, true},
		{"before range", multiDay, "2025-06-08", SessionFullDay, false},
		{"after range", multiDay, "2025-06-12", SessionFullDay, false},
		{"multi-day covers any session", multiDay, "2025-06-10", SessionAfternoon, true},
		{"half-day matches same session", halfAM, "2025-06-09", SessionMorning, true},
		{"half-day rejects other session", halfAM, "2025-06-09", SessionAfternoon, false},
		{"half-day covers whole-day check", halfAM, "2025-06-09", SessionFullDay, true},
		{"empty session behaves as full day", halfAM, "2025-06-09", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grant.Covers(date(tt.day), tt.session); got != tt.want {
				t.Errorf("Covers(%s, %s) = %v, want %v", tt.day, tt.session, got, tt.want)
			}
		})
	}
}

func TestGrantIsHalfDay(t *testing.T) {
	if !(Grant{DurationDays: 0.5}).IsHalfDay() {
		t.Error("0.5 day grant should be half-day")
	}
	if (Grant{DurationDays: 1}).IsHalfDay() {
		t.Error("1 day grant should not be half-day")
	}
}

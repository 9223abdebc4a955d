package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	recordService attendance.RecordService
}

func NewAttendanceJobs(recordService attendance.RecordService) *AttendanceJobs {
	return &AttendanceJobs{recordService: recordService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates absence records for every scheduled employee who
// produced no punches the previous day. The resolver still decides the final
// status, so holidays and approved leave end up labeled correctly.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59)
	if time.Now().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	count, err := j.recordService.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees for %s: %w", yesterday, err)
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday, "count", count)
	return nil
}

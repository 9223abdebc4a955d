package attendance

import (
	"context"
	"time"
)

// RecordService defines business logic for attendance record operations.
type RecordService interface {
	// IngestPunches upserts one record per punch, resolving status, lateness
	// and worked minutes against the active schedule and day-level overrides.
	IngestPunches(ctx context.Context, punches []IngestPunchRequest) ([]RecordResponse, error)

	// ListRecords retrieves records with filters (reviewer roles).
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// ListMyRecords retrieves the authenticated employee's records.
	ListMyRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// Justify attaches a manual justification and re-resolves the record.
	Justify(ctx context.Context, req JustifyRequest) (RecordResponse, error)

	DeleteRecord(ctx context.Context, id string) error

	// Summary aggregates one employee's records over an inclusive date range.
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)

	// MarkAbsentees creates absent records for scheduled employees without a
	// record on the date. Used by the nightly job.
	MarkAbsentees(ctx context.Context, date string) (int, error)

	// RecomputeRange re-resolves the employee's existing records between the
	// dates, inclusive. Used when a late-arriving override (medical leave,
	// approved grant) must retroactively correct history.
	RecomputeRange(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}

// AppealService defines business logic for attendance appeals: an employee
// contests their own late or absent record, a reviewer approves or rejects,
// and approval feeds the record's manual justification.
type AppealService interface {
	// CreateAppeal opens an appeal on the requester's own late/absent record.
	CreateAppeal(ctx context.Context, req CreateAppealRequest) (AppealResponse, error)

	// ListAppeals retrieves appeals with filters (reviewer roles).
	ListAppeals(ctx context.Context, filter AppealFilter) (ListAppealsResponse, error)

	// ListMyAppeals retrieves the authenticated employee's appeals.
	ListMyAppeals(ctx context.Context, filter AppealFilter) (ListAppealsResponse, error)

	GetAppeal(ctx context.Context, id string) (AppealResponse, error)

	// ReviewAppeal approves or rejects a pending appeal. Approval justifies
	// the underlying record with the reviewer's response.
	ReviewAppeal(ctx context.Context, req ReviewAppealRequest) (AppealResponse, error)
}

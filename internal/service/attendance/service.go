package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/domain/user"
	"github.com/colegio-admin/staff-backend-go/internal/pkg/database"
	"github.com/colegio-admin/staff-backend-go/internal/repository/postgresql"
	"github.com/colegio-admin/staff-backend-go/internal/service/businessday"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type RecordServiceImpl struct {
	db *database.DB
	attendance.RecordRepository
	resolver   *StatusResolver
	calculator *businessday.Calculator
}

func NewRecordService(db *database.DB, recordRepository attendance.RecordRepository, resolver *StatusResolver, calculator *businessday.Calculator) attendance.RecordService {
	return &RecordServiceImpl{
		db:               db,
		RecordRepository: recordRepository,
		resolver:         resolver,
		calculator:       calculator,
	}
}

func claimsFromContext(ctx context.Context) (userID, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	role, _ = claims["role"].(string)
	return userID, role, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// parseClock combines a record's date with an HH:MM or HH:MM:SS string.
func parseClock(date time.Time, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var clock time.Time
	var err error
	if clock, err = time.Parse("15:04:05", *s); err != nil {
		if clock, err = time.Parse("15:04", *s); err != nil {
			return nil, fmt.Errorf("invalid time of day %q", *s)
		}
	}
	full := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
	return &full, nil
}

func clockToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		Date:                rec.Date.Format("2006-01-02"),
		ClockIn:             clockToString(rec.ClockIn),
		ClockOut:            clockToString(rec.ClockOut),
		Status:              string(rec.Status),
		LatenessMinutes:     rec.LatenessMinutes,
		WorkedMinutes:       rec.WorkedMinutes,
		ManualJustification: rec.ManualJustification,
		JustifiedBy:         rec.JustifiedBy,
		CreatedAt:           rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}

// IngestPunches implements attendance.RecordService.
func (s *RecordServiceImpl) IngestPunches(ctx context.Context, punches []attendance.IngestPunchRequest) ([]attendance.RecordResponse, error) {
	for i := range punches {
		if err := punches[i].Validate(); err != nil {
			return nil, err
		}
	}

	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var responses []attendance.RecordResponse
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, punch := range punches {
			date, err := parseDate(punch.Date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", punch.Date, err)
			}

			clockIn, err := parseClock(date, punch.ClockIn)
			if err != nil {
				return err
			}
			clockOut, err := parseClock(date, punch.ClockOut)
			if err != nil {
				return err
			}

			// A re-ingested day keeps its manual justification.
			existing, err := s.RecordRepository.GetByEmployeeAndDate(txCtx, punch.EmployeeID, date)
			if err != nil {
				return fmt.Errorf("failed to look up existing record: %w", err)
			}
			justification := ""
			if existing != nil {
				justification = existing.ManualJustification
			}

			res, err := s.resolver.Resolve(txCtx, punch.EmployeeID, date, clockIn, clockOut, justification, leave.SessionFullDay)
			if err != nil {
				return err
			}

			rec := attendance.Record{
				EmployeeID:      punch.EmployeeID,
				Date:            date,
				ClockIn:         clockIn,
				ClockOut:        clockOut,
				LatenessMinutes: res.LatenessMinutes,
				WorkedMinutes:   res.WorkedMinutes,
				Status:          res.Status,
				ScheduleID:      res.ScheduleID,
				ProcessedBy:     &actorID,
			}
			if existing != nil {
				rec.ManualJustification = existing.ManualJustification
				rec.JustifiedBy = existing.JustifiedBy
				rec.JustifiedAt = existing.JustifiedAt
			}

			saved, err := s.RecordRepository.Upsert(txCtx, rec)
			if err != nil {
				return fmt.Errorf("failed to upsert attendance record: %w", err)
			}
			responses = append(responses, toRecordResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// ListRecords implements attendance.RecordService.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildListResponse(records, total, filter), nil
}

// ListMyRecords implements attendance.RecordService.
func (s *RecordServiceImpl) ListMyRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}
	filter.EmployeeID = &userID

	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	return buildListResponse(records, total, filter), nil
}

func buildListResponse(records []attendance.Record, total int64, filter attendance.RecordFilter) attendance.ListRecordsResponse {
	resp := attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	return resp
}

// GetRecord implements attendance.RecordService.
func (s *RecordServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if role == string(user.RoleFuncionario) && rec.EmployeeID != userID {
		return attendance.RecordResponse{}, attendance.ErrUnauthorized
	}

	return toRecordResponse(rec), nil
}

// Justify implements attendance.RecordService.
func (s *RecordServiceImpl) Justify(ctx context.Context, req attendance.JustifyRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	now := time.Now()
	rec.ManualJustification = req.Justification
	rec.JustifiedBy = &actorID
	rec.JustifiedAt = &now
	rec.ProcessedBy = &actorID

	res, err := s.resolver.Resolve(ctx, rec.EmployeeID, rec.Date, rec.ClockIn, rec.ClockOut, rec.ManualJustification, leave.SessionFullDay)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	rec.Status = res.Status
	rec.LatenessMinutes = res.LatenessMinutes
	rec.WorkedMinutes = res.WorkedMinutes
	rec.ScheduleID = res.ScheduleID

	if err := s.RecordRepository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return toRecordResponse(rec), nil
}

// DeleteRecord implements attendance.RecordService.
func (s *RecordServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.RecordRepository.Delete(ctx, id)
}

// Summary implements attendance.RecordService.
func (s *RecordServiceImpl) Summary(ctx context.Context, req attendance.SummaryRequest) (attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SummaryResponse{}, err
	}

	from, _ := parseDate(req.StartDate)
	to, _ := parseDate(req.EndDate)

	businessDays, err := s.calculator.CountBusinessDays(ctx, from, to)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	records, err := s.RecordRepository.ListByEmployeeBetween(ctx, req.EmployeeID, from, to)
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := attendance.SummaryResponse{
		EmployeeID:   req.EmployeeID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BusinessDays: businessDays,
		StatusCounts: make(map[string]int),
	}
	for _, rec := range records {
		resp.StatusCounts[string(rec.Status)]++
		resp.TotalLatenessMinutes += rec.LatenessMinutes
		if rec.WorkedMinutes != nil {
			resp.TotalWorkedMinutes += *rec.WorkedMinutes
		}
	}

	return resp, nil
}

// MarkAbsentees implements attendance.RecordService.
func (s *RecordServiceImpl) MarkAbsentees(ctx context.Context, date string) (int, error) {
	day, err := parseDate(date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}

	// Weekends and holidays carry no expectation of presence; marking them
	// would fabricate records no clock export ever produces.
	business, err := s.calculator.IsBusinessDay(ctx, day)
	if err != nil {
		return 0, err
	}
	if !business {
		return 0, nil
	}

	ids, err := s.RecordRepository.EmployeesWithoutRecord(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("failed to find employees without records: %w", err)
	}

	marked := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, employeeID := range ids {
			res, err := s.resolver.Resolve(txCtx, employeeID, day, nil, nil, "", leave.SessionFullDay)
			if err != nil {
				return err
			}

			rec := attendance.Record{
				EmployeeID:      employeeID,
				Date:            day,
				LatenessMinutes: res.LatenessMinutes,
				WorkedMinutes:   res.WorkedMinutes,
				Status:          res.Status,
				ScheduleID:      res.ScheduleID,
			}
			if _, err := s.RecordRepository.Upsert(txCtx, rec); err != nil {
				return fmt.Errorf("failed to upsert attendance record: %w", err)
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return marked, nil
}

// RecomputeRange implements attendance.RecordService.
func (s *RecordServiceImpl) RecomputeRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	records, err := s.RecordRepository.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	updated := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, rec := range records {
			res, err := s.resolver.Resolve(txCtx, rec.EmployeeID, rec.Date, rec.ClockIn, rec.ClockOut, rec.ManualJustification, leave.SessionFullDay)
			if err != nil {
				return err
			}

			rec.Status = res.Status
			rec.LatenessMinutes = res.LatenessMinutes
			rec.WorkedMinutes = res.WorkedMinutes
			rec.ScheduleID = res.ScheduleID

			if err := s.RecordRepository.Update(txCtx, rec); err != nil {
				return fmt.Errorf("failed to update attendance record: %w", err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppealRepository struct {
	appeals []attendance.Appeal
}

func (f *fakeAppealRepository) Create(ctx context.Context, a attendance.Appeal) (attendance.Appeal, error) {
	a.ID = "appeal-1"
	a.CreatedAt = time.Now()
	f.appeals = append(f.appeals, a)
	return a, nil
}

func (f *fakeAppealRepository) GetByID(ctx context.Context, id string) (attendance.Appeal, error) {
	for _, a := range f.appeals {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.Appeal{}, attendance.ErrAppealNotFound
}

func (f *fakeAppealRepository) ExistsForRecord(ctx context.Context, recordID string) (bool, error) {
	for _, a := range f.appeals {
		if a.RecordID == recordID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppealRepository) Update(ctx context.Context, a attendance.Appeal) error {
	for i := range f.appeals {
		if f.appeals[i].ID == a.ID {
			f.appeals[i] = a
			return nil
		}
	}
	return attendance.ErrAppealNotFound
}

func (f *fakeAppealRepository) List(ctx context.Context, filter attendance.AppealFilter) ([]attendance.Appeal, int64, error) {
	return f.appeals, int64(len(f.appeals)), nil
}

func (f *fakeAppealRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AppealFilter) ([]attendance.Appeal, int64, error) {
	var out []attendance.Appeal
	for _, a := range f.appeals {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

type fakeJustifier struct {
	requests []attendance.JustifyRequest
}

func (f *fakeJustifier) Justify(ctx context.Context, req attendance.JustifyRequest) (attendance.RecordResponse, error) {
	f.requests = append(f.requests, req)
	return attendance.RecordResponse{ID: req.ID, Status: string(attendance.StatusJustified)}, nil
}

func authedContext(t *testing.T, userID, role string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func lateRecord(id, employeeID string) attendance.Record {
	return attendance.Record{
		ID:         id,
		EmployeeID: employeeID,
		Date:       time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusLate,
	}
}

func TestCreateAppeal_OnlyOwnRecord(t *testing.T) {
	records := &fakeRecordRepository{records: []attendance.Record{lateRecord("rec-late", "emp-1")}}
	appeals := &fakeAppealRepository{}
	svc := NewAppealService(appeals, records, nil)

	_, err := svc.CreateAppeal(authedContext(t, "emp-2", "FUNCIONARIO"), attendance.CreateAppealRequest{
		RecordID: "rec-late",
		Reason:   "traffic accident on the route",
	})
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
	assert.Empty(t, appeals.appeals)

	resp, err := svc.CreateAppeal(authedContext(t, "emp-1", "FUNCIONARIO"), attendance.CreateAppealRequest{
		RecordID: "rec-late",
		Reason:   "traffic accident on the route",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestCreateAppeal_OnlyLateOrAbsent(t *testing.T) {
	onTime := attendance.Record{
		ID:         "rec-ontime",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusOnTime,
	}
	records := &fakeRecordRepository{records: []attendance.Record{onTime}}
	svc := NewAppealService(&fakeAppealRepository{}, records, nil)

	_, err := svc.CreateAppeal(authedContext(t, "emp-1", "FUNCIONARIO"), attendance.CreateAppealRequest{
		RecordID: "rec-ontime",
		Reason:   "I was on time",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotAppealable)
}

func TestCreateAppeal_OnePerRecord(t *testing.T) {
	records := &fakeRecordRepository{records: []attendance.Record{lateRecord("rec-late", "emp-1")}}
	appeals := &fakeAppealRepository{}
	svc := NewAppealService(appeals, records, nil)
	ctx := authedContext(t, "emp-1", "FUNCIONARIO")

	_, err := svc.CreateAppeal(ctx, attendance.CreateAppealRequest{RecordID: "rec-late", Reason: "bus strike"})
	require.NoError(t, err)

	_, err = svc.CreateAppeal(ctx, attendance.CreateAppealRequest{RecordID: "rec-late", Reason: "bus strike"})
	assert.ErrorIs(t, err, attendance.ErrAppealExists)
}

func TestReviewAppeal_ApprovalJustifiesRecord(t *testing.T) {
	records := &fakeRecordRepository{records: []attendance.Record{lateRecord("rec-late", "emp-1")}}
	appeals := &fakeAppealRepository{}
	justifier := &fakeJustifier{}
	svc := NewAppealService(appeals, records, justifier)

	created, err := svc.CreateAppeal(authedContext(t, "emp-1", "FUNCIONARIO"), attendance.CreateAppealRequest{
		RecordID: "rec-late",
		Reason:   "bus strike",
	})
	require.NoError(t, err)

	reviewerCtx := authedContext(t, "director-1", "DIRECTOR")
	reviewed, err := svc.ReviewAppeal(reviewerCtx, attendance.ReviewAppealRequest{
		ID:       created.ID,
		Action:   attendance.AppealActionApprove,
		Response: "verified with the transport authority",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, "director-1", *reviewed.ReviewedBy)

	require.Len(t, justifier.requests, 1)
	assert.Equal(t, "rec-late", justifier.requests[0].ID)
	assert.Contains(t, justifier.requests[0].Justification, "verified with the transport authority")

	_, err = svc.ReviewAppeal(reviewerCtx, attendance.ReviewAppealRequest{
		ID:       created.ID,
		Action:   attendance.AppealActionReject,
		Response: "already decided",
	})
	assert.ErrorIs(t, err, attendance.ErrAppealAlreadyReviewed)
}

func TestReviewAppeal_RejectionLeavesRecordAlone(t *testing.T) {
	records := &fakeRecordRepository{records: []attendance.Record{lateRecord("rec-late", "emp-1")}}
	justifier := &fakeJustifier{}
	svc := NewAppealService(&fakeAppealRepository{}, records, justifier)

	created, err := svc.CreateAppeal(authedContext(t, "emp-1", "FUNCIONARIO"), attendance.CreateAppealRequest{
		RecordID: "rec-late",
		Reason:   "bus strike",
	})
	require.NoError(t, err)

	reviewed, err := svc.ReviewAppeal(authedContext(t, "admin-1", "ADMIN"), attendance.ReviewAppealRequest{
		ID:       created.ID,
		Action:   attendance.AppealActionReject,
		Response: "no supporting evidence",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", reviewed.Status)
	assert.Empty(t, justifier.requests)
}

func TestReviewAppeal_RequiresResponse(t *testing.T) {
	svc := NewAppealService(&fakeAppealRepository{}, &fakeRecordRepository{}, nil)

	_, err := svc.ReviewAppeal(authedContext(t, "admin-1", "ADMIN"), attendance.ReviewAppealRequest{
		ID:     "appeal-1",
		Action: attendance.AppealActionApprove,
	})
	require.Error(t, err)
}

package leave

import (
	"context"
	"testing"
	"time"

	"github.com/colegio-admin/staff-backend-go/internal/domain/leave"
	"github.com/colegio-admin/staff-backend-go/internal/service/businessday"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGrantRepository struct {
	created []leave.Grant
}

func (f *fakeGrantRepository) Create(ctx context.Context, g leave.Grant) (leave.Grant, error) {
	g.ID = "grant-1"
	g.CreatedAt = time.Now()
	f.created = append(f.created, g)
	return g, nil
}

func (f *fakeGrantRepository) GetByID(ctx context.Context, id string) (leave.Grant, error) {
	for _, g := range f.created {
		if g.ID == id {
			return g, nil
		}
	}
	return leave.Grant{}, leave.ErrGrantNotFound
}

func (f *fakeGrantRepository) Update(ctx context.Context, g leave.Grant) error {
	for i := range f.created {
		if f.created[i].ID == g.ID {
			f.created[i] = g
			return nil
		}
	}
	return leave.ErrGrantNotFound
}

func (f *fakeGrantRepository) List(ctx context.Context, filter leave.GrantFilter) ([]leave.Grant, int64, error) {
	return f.created, int64(len(f.created)), nil
}

func (f *fakeGrantRepository) ListByEmployee(ctx context.Context, employeeID string, filter leave.GrantFilter) ([]leave.Grant, int64, error) {
	var out []leave.Grant
	for _, g := range f.created {
		if g.EmployeeID == employeeID {
			out = append(out, g)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeGrantRepository) ApprovedCovering(ctx context.Context, employeeID string, d time.Time) ([]leave.Grant, error) {
	return nil, nil
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

func TestCreateGrant_EndDateSkipsWeekend(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)
	ctx := authedContext(t, "emp-1", "FUNCIONARIO")

	// Friday 2025-06-06, two business days: Friday and the following Monday.
	resp, err := svc.CreateGrant(ctx, leave.CreateGrantRequest{
		StartDate:    "2025-06-06",
		DurationDays: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-06", resp.StartDate)
	assert.Equal(t, "2025-06-09", resp.EndDate)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "FD", resp.Session)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestCreateGrant_HalfDayKeepsStartDate(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)
	ctx := authedContext(t, "emp-1", "FUNCIONARIO")

	resp, err := svc.CreateGrant(ctx, leave.CreateGrantRequest{
		StartDate:    "2025-06-09",
		DurationDays: 0.5,
		Session:      "AM",
	})
	require.NoError(t, err)

	assert.Equal(t, resp.StartDate, resp.EndDate)
	assert.Equal(t, "AM", resp.Session)
}

func TestCreateGrant_RejectsInvalidDuration(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)
	ctx := authedContext(t, "emp-1", "FUNCIONARIO")

	_, err := svc.CreateGrant(ctx, leave.CreateGrantRequest{
		StartDate:    "2025-06-09",
		DurationDays: 4,
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDuration)
	assert.Empty(t, repo.created)
}

func TestCreateGrant_OnBehalfRequiresReviewerRole(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)

	_, err := svc.CreateGrant(authedContext(t, "emp-2", "FUNCIONARIO"), leave.CreateGrantRequest{
		EmployeeID:   "emp-1",
		StartDate:    "2025-06-09",
		DurationDays: 1,
	})
	assert.ErrorIs(t, err, leave.ErrUnauthorized)
	assert.Empty(t, repo.created)

	resp, err := svc.CreateGrant(authedContext(t, "secretaria-1", "SECRETARIA"), leave.CreateGrantRequest{
		EmployeeID:   "emp-1",
		StartDate:    "2025-06-09",
		DurationDays: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestGetGrant_HiddenFromOtherEmployees(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)

	created, err := svc.CreateGrant(authedContext(t, "emp-1", "FUNCIONARIO"), leave.CreateGrantRequest{
		StartDate:    "2025-06-09",
		DurationDays: 1,
	})
	require.NoError(t, err)

	_, err = svc.GetGrant(authedContext(t, "emp-2", "FUNCIONARIO"), created.ID)
	assert.ErrorIs(t, err, leave.ErrUnauthorized)

	got, err := svc.GetGrant(authedContext(t, "emp-1", "FUNCIONARIO"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = svc.GetGrant(authedContext(t, "director-1", "DIRECTOR"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCancelGrant_OnlyOwnerOrReviewer(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)

	created, err := svc.CreateGrant(authedContext(t, "emp-1", "FUNCIONARIO"), leave.CreateGrantRequest{
		StartDate:    "2025-06-09",
		DurationDays: 1,
	})
	require.NoError(t, err)

	_, err = svc.CancelGrant(authedContext(t, "emp-2", "FUNCIONARIO"), leave.CancelGrantRequest{
		ID:     created.ID,
		Reason: "not mine to cancel",
	})
	assert.ErrorIs(t, err, leave.ErrUnauthorized)

	got, err := svc.GetGrant(authedContext(t, "emp-1", "FUNCIONARIO"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)

	cancelled, err := svc.CancelGrant(authedContext(t, "emp-1", "FUNCIONARIO"), leave.CancelGrantRequest{
		ID:     created.ID,
		Reason: "plans changed",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestApproveGrant_OnlyPending(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)
	ctx := authedContext(t, "director-1", "DIRECTOR")

	createCtx := authedContext(t, "emp-1", "FUNCIONARIO")
	created, err := svc.CreateGrant(createCtx, leave.CreateGrantRequest{
		StartDate:    "2025-06-09",
		DurationDays: 1,
	})
	require.NoError(t, err)

	approved, err := svc.ApproveGrant(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "director-1", *approved.ApprovedBy)

	_, err = svc.ApproveGrant(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrGrantAlreadyProcessed)
}

func TestCancelGrant_RejectedIsNotCancellable(t *testing.T) {
	repo := &fakeGrantRepository{}
	svc := NewGrantService(repo, businessday.NewCalculator(nil), nil)

	createCtx := authedContext(t, "emp-1", "FUNCIONARIO")
	created, err := svc.CreateGrant(createCtx, leave.CreateGrantRequest{
		StartDate:    "2025-06-09",
		DurationDays: 1,
	})
	require.NoError(t, err)

	reviewerCtx := authedContext(t, "director-1", "DIRECTOR")
	_, err = svc.RejectGrant(reviewerCtx, leave.RejectGrantRequest{ID: created.ID, Reason: "staffing shortage"})
	require.NoError(t, err)

	_, err = svc.CancelGrant(createCtx, leave.CancelGrantRequest{ID: created.ID, Reason: "changed my mind"})
	assert.ErrorIs(t, err, leave.ErrGrantNotCancellable)
}

package leave

import "context"

// GrantService defines business logic for leave grant operations.
type GrantService interface {
	// CreateGrant registers a request, computing its end date with
	// business-day arithmetic.
	CreateGrant(ctx context.Context, req CreateGrantRequest) (GrantResponse, error)

	// ListGrants retrieves grants with filters (reviewer roles).
	ListGrants(ctx context.Context, filter GrantFilter) (ListGrantsResponse, error)

	// ListMyGrants retrieves the authenticated employee's grants.
	ListMyGrants(ctx context.Context, filter GrantFilter) (ListGrantsResponse, error)

	GetGrant(ctx context.Context, id string) (GrantResponse, error)

	// ApproveGrant marks a pending grant approved, making it visible to
	// attendance resolution.
	ApproveGrant(ctx context.Context, id string) (GrantResponse, error)

	RejectGrant(ctx context.Context, req RejectGrantRequest) (GrantResponse, error)

	CancelGrant(ctx context.Context, req CancelGrantRequest) (GrantResponse, error)
}

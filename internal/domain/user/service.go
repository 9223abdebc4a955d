package user

import "context"

// UserService defines business logic for staff user management.
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context, onlyActive bool) ([]UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeactivateUser soft-deletes the account; records and grants remain.
	DeactivateUser(ctx context.Context, actorID, id string) error
}

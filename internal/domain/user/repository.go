package user

import "context"

// UserRepository defines data access methods for staff users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByRUT(ctx context.Context, rut string) (User, error)
	List(ctx context.Context, onlyActive bool) ([]User, error)
	Update(ctx context.Context, u User) error
}

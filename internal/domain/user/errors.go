package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRUTExists            = errors.New("rut already registered")
	ErrEmailExists          = errors.New("email already registered")
	ErrAccessRequired       = errors.New("insufficient role for this operation")
	ErrAdminOnly            = errors.New("admin access required")
	ErrReviewerOnly         = errors.New("reviewer access required")
	ErrInactiveUser         = errors.New("user account is inactive")
	ErrInvalidRole          = errors.New("invalid role")
	ErrSelfDeleteNotAllowed = errors.New("cannot delete your own account")
)

package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	ListActiveAdmins(ctx context.Context) ([]User, error)
	ListActiveStaffByBranch(ctx context.Context, branchID string) ([]User, error)
}

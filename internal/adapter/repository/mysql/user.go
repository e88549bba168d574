package mysql

import (
	"context"

	userDomain "goldloan-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListActiveAdmins(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", "admin", true).
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListActiveStaffByBranch(ctx context.Context, branchID string) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ? AND branch_id = ? AND is_active = ?", "staff", branchID, true).
		Find(&out)
	return out, res.Error
}

package user

import "time"

// User is a staff or admin account. Authentication lives with the auth
// collaborator; the core only needs users as notification recipients and
// audit references.
type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	FullName  string    `gorm:"size:128" json:"full_name"`
	Email     string    `gorm:"size:128" json:"email"`
	Role      string    `gorm:"size:16" json:"role"`
	BranchID  string    `gorm:"size:32;index" json:"branch_id"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

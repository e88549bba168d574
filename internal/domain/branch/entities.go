package branch

import "time"

type Branch struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	BranchID  string    `gorm:"size:32;uniqueIndex:ux_branches_branch_id" json:"branch_id"`
	Name      string    `gorm:"size:128;uniqueIndex:ux_branches_name" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Branch) TableName() string { return "branches" }

package scheme

import "time"

// Scheme is a named loan product. Historical loans keep resolving their
// scheme for display, so "deleting" a scheme only flips IsActive.
type Scheme struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"-"`
	SchemeName        string    `gorm:"size:64;uniqueIndex:ux_schemes_name" json:"scheme_name"`
	InterestRate      float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TenureMonths      int       `gorm:"column:tenure_months" json:"tenure_months"`
	MaxLoanPercentage float64   `gorm:"type:decimal(5,2)" json:"max_loan_percentage"`
	PreInterestMonths int       `gorm:"default:0" json:"pre_interest_months"`
	PenalInterestRate float64   `gorm:"type:decimal(6,2);default:0" json:"penal_interest_rate"`
	OverdueFine       float64   `gorm:"type:decimal(12,2);default:0" json:"overdue_fine"`
	Description       string    `gorm:"type:text" json:"description"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Scheme) TableName() string { return "schemes" }

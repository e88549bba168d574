package schemereq

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// SchemeRequest is a staff-proposed per-customer override of scheme terms.
// It transitions pending -> approved/rejected exactly once; an approved
// request is then valid input to loan origination for the same
// (customer, scheme) pair.
type SchemeRequest struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	RequestID   string `gorm:"size:32;uniqueIndex:ux_scheme_requests_request_id" json:"request_id"`
	StaffID     string `gorm:"size:32" json:"staff_id"`
	CustomerRef uint64 `gorm:"column:customer_ref;index:idx_scheme_requests_pair" json:"-"`
	SchemeRef   uint64 `gorm:"column:scheme_ref;index:idx_scheme_requests_pair" json:"-"`
	BranchID    string `gorm:"size:32" json:"branch_id"`

	ProposedInterestRate float64  `gorm:"type:decimal(6,2)" json:"proposed_interest_rate"`
	ProposedTenureMonths int      `json:"proposed_tenure_months"`
	ProposedMaxLoanPct   *float64 `gorm:"type:decimal(5,2)" json:"proposed_max_loan_percentage,omitempty"`

	Reason       string    `gorm:"type:text" json:"reason"`
	Status       Status    `gorm:"size:16;default:'pending'" json:"status"`
	ReviewedBy   string    `gorm:"size:32" json:"reviewed_by,omitempty"`
	AdminComment string    `gorm:"type:text" json:"admin_comment,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchemeRequest) TableName() string { return "scheme_requests" }

package loan

import (
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusOverdue   Status = "overdue"
	StatusClosed    Status = "closed"
	StatusAuctioned Status = "auctioned"
)

// Terminal reports whether no further status transition is allowed.
func (s Status) Terminal() bool { return s == StatusClosed || s == StatusAuctioned }

type Loan struct {
	ID          uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID      string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerRef uint64 `gorm:"column:customer_ref;index" json:"-"`
	SchemeRef   uint64 `gorm:"column:scheme_ref;index" json:"-"`

	TotalWeight       float64 `gorm:"type:decimal(10,3)" json:"total_weight"`
	GoldRateAtPledge  float64 `gorm:"type:decimal(12,2)" json:"gold_rate_at_pledge"`
	Valuation         float64 `gorm:"type:decimal(14,2)" json:"valuation"`
	LoanAmount        float64 `gorm:"type:decimal(14,2)" json:"loan_amount"`
	InterestRate      float64 `gorm:"type:decimal(6,2)" json:"interest_rate"`
	PreInterestAmount float64 `gorm:"type:decimal(14,2);default:0" json:"pre_interest_amount"`
	MonthlyInterest   float64 `gorm:"type:decimal(14,2)" json:"monthly_interest"`

	LoanDate        time.Time `gorm:"column:loan_date" json:"loan_date"`
	DueDate         time.Time `gorm:"column:due_date;index" json:"due_date"`
	NextPaymentDate time.Time `gorm:"column:next_payment_date" json:"next_payment_date"`

	CurrentBalance   float64 `gorm:"type:decimal(14,2)" json:"current_balance"`
	PaymentFrequency string  `gorm:"size:16;default:'monthly'" json:"payment_frequency"`
	Status           Status  `gorm:"size:16;index:idx_loans_status;default:'active'" json:"status"`

	// Populated only once the loan is auctioned.
	AuctionDate    *time.Time `gorm:"column:auction_date" json:"auction_date,omitempty"`
	SaleAmount     float64    `gorm:"type:decimal(14,2);default:0" json:"sale_amount,omitempty"`
	BidderName     string     `gorm:"size:128" json:"bidder_name,omitempty"`
	BidderContact  string     `gorm:"size:64" json:"bidder_contact,omitempty"`
	AuctionRemarks string     `gorm:"type:text" json:"auction_remarks,omitempty"`

	CreatedBy string `gorm:"size:32" json:"created_by"`
	BranchID  string `gorm:"size:32;index:idx_loans_branch" json:"branch_id"`

	// Optimistic lock for concurrent balance mutations.
	Version   uint64    `gorm:"default:0" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Item is one pledged jewellery piece. Items are created atomically with
// their parent loan and never managed independently.
type Item struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanRef     uint64  `gorm:"column:loan_ref;index" json:"-"`
	Name        string  `gorm:"size:128" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	NetWeight   float64 `gorm:"type:decimal(10,3)" json:"net_weight"`
	Purity      string  `gorm:"size:8" json:"purity"`
	// Photo paths owned by the file-storage collaborator, comma-joined.
	Photos    string    `gorm:"type:text" json:"photos"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Item) TableName() string { return "items" }

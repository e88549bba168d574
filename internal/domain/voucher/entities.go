package voucher

import "time"

// Side is the day-book treatment of a voucher amount. The same amount
// column means money-out for one set of voucher types and money-in for
// another; modeling the mapping as a tagged value keeps the aggregation
// switch exhaustive.
type Side int

const (
	// NoSide vouchers (Contra, Journal, Memo and anything unknown) carry no
	// cash movement and contribute to neither day-book column nor the
	// financial totals.
	NoSide Side = iota
	DebitSide
	CreditSide
)

type Voucher struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	VoucherID   string    `gorm:"size:32;uniqueIndex:ux_vouchers_voucher_id" json:"voucher_id"`
	Type        string    `gorm:"size:32" json:"type"`
	Category    string    `gorm:"size:64" json:"category"`
	Amount      float64   `gorm:"type:decimal(14,2)" json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index" json:"date"`
	CreatedBy   string    `gorm:"size:32" json:"created_by"`
	BranchID    string    `gorm:"size:32;index" json:"branch_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Voucher) TableName() string { return "vouchers" }

// Side maps the voucher type to its day-book column.
func (v *Voucher) Side() Side {
	switch v.Type {
	case "expense", "Payment", "Purchase":
		return DebitSide
	case "income", "Receipt", "Sales":
		return CreditSide
	default:
		return NoSide
	}
}

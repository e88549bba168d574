package payment

import "time"

type Type string

const (
	TypeInterest       Type = "interest"
	TypePrincipal      Type = "principal"
	TypeFullSettlement Type = "full_settlement"
)

func (t Type) Valid() bool {
	switch t {
	case TypeInterest, TypePrincipal, TypeFullSettlement:
		return true
	}
	return false
}

type Mode string

const (
	ModeCash         Mode = "cash"
	ModeOnline       Mode = "online"
	ModeBankTransfer Mode = "bank_transfer"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeCash, ModeOnline, ModeBankTransfer:
		return true
	}
	return false
}

// Payment is an append-only ledger line for a loan. There is no update or
// delete operation anywhere in the core.
type Payment struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	PaymentID   string    `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanRef     uint64    `gorm:"column:loan_ref;index" json:"-"`
	PaymentDate time.Time `gorm:"column:payment_date;index" json:"payment_date"`
	Amount      float64   `gorm:"type:decimal(14,2)" json:"amount"`
	Type        Type      `gorm:"size:20" json:"type"`
	Mode        Mode      `gorm:"size:16;default:'cash'" json:"payment_mode"`
	CollectedBy string    `gorm:"size:32" json:"collected_by"`
	Remarks     string    `gorm:"type:text" json:"remarks"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

package notification

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one stored fan-out line for one recipient.
type Notification struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	Recipient     string    `gorm:"size:32;index" json:"recipient"`
	Title         string    `gorm:"size:128" json:"title"`
	Message       string    `gorm:"type:text" json:"message"`
	Severity      Severity  `gorm:"size:16;default:'info'" json:"severity"`
	BranchID      string    `gorm:"size:32" json:"branch_id,omitempty"`
	ReferenceID   string    `gorm:"size:64" json:"reference_id,omitempty"`
	ReferenceType string    `gorm:"size:32" json:"reference_type,omitempty"`
	IsRead        bool      `gorm:"default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// Event is the collaborator-facing shape accepted by the fan-out service.
// A nil/empty branch means "all admins only".
type Event struct {
	Title         string
	Message       string
	Severity      Severity
	BranchID      string
	ReferenceID   string
	ReferenceType string
}

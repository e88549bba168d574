package customer

import "time"

// Customer carries the KYC profile. Photo and document fields hold path
// strings owned by the file-storage collaborator.
type Customer struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	Name       string `gorm:"size:128" json:"name"`
	Email      string `gorm:"size:128" json:"email,omitempty"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"type:text" json:"address"`

	AadharNumber string     `gorm:"size:20" json:"aadhar_number,omitempty"`
	PanNumber    string     `gorm:"size:20" json:"pan_number,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Nominee      string     `gorm:"size:128" json:"nominee,omitempty"`

	Photo      string `gorm:"type:text" json:"photo,omitempty"`
	AadharCard string `gorm:"type:text" json:"aadhar_card,omitempty"`
	PanCard    string `gorm:"type:text" json:"pan_card,omitempty"`

	CreatedBy string    `gorm:"size:32" json:"created_by"`
	BranchID  string    `gorm:"size:32;index" json:"branch_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

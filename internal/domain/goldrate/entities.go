package goldrate

import "time"

// Purity tiers priced by the registry. The fixed 22k/20k/18k enumeration
// replaced an earlier 22k/24k variant; both are never supported at once.
const (
	Purity22K = "22k"
	Purity20K = "20k"
	Purity18K = "18k"
)

// GoldRate holds the price per gram for each purity tier on one calendar
// day. At most one authoritative record exists per day.
type GoldRate struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	RateDate       time.Time `gorm:"column:rate_date;uniqueIndex:ux_gold_rates_date" json:"rate_date"`
	RatePerGram22K float64   `gorm:"column:rate_per_gram_22k;type:decimal(12,2)" json:"rate_per_gram_22k"`
	RatePerGram20K float64   `gorm:"column:rate_per_gram_20k;type:decimal(12,2)" json:"rate_per_gram_20k"`
	RatePerGram18K float64   `gorm:"column:rate_per_gram_18k;type:decimal(12,2)" json:"rate_per_gram_18k"`
	UpdatedBy      string    `gorm:"size:32" json:"updated_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GoldRate) TableName() string { return "gold_rates" }

// IsZero reports whether no tier carries a positive rate. An all-zero
// record is treated as "rate not set".
func (r *GoldRate) IsZero() bool {
	return r.RatePerGram22K <= 0 && r.RatePerGram20K <= 0 && r.RatePerGram18K <= 0
}

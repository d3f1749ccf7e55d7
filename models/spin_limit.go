package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SpinLimit 用户某一天的转盘额度, one row per user per day.
// Invariant: 0 <= Used <= MaxSpins.
type SpinLimit struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID         int64           `gorm:"column:user_id;not null;uniqueIndex:idx_spin_limit_day,priority:1" json:"user_id,string"`
	Date           string          `gorm:"column:spin_date;size:10;not null;uniqueIndex:idx_spin_limit_day,priority:2" json:"date"` // YYYY-MM-DD
	Used           int             `gorm:"column:used;not null;default:0" json:"used"`
	MaxSpins       int             `gorm:"column:max_spins;not null;default:0" json:"max_spins"`
	PurchaseAmount decimal.Decimal `gorm:"column:purchase_amount;type:decimal(12,2);not null;default:0" json:"purchase_amount"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SpinLimit) TableName() string {
	return "spin_limits"
}

func (s *SpinLimit) BeforeCreate(*gorm.DB) error {
	nextID(&s.ID)
	return nil
}

func (s *SpinLimit) Remaining() int {
	if s.MaxSpins <= s.Used {
		return 0
	}
	return s.MaxSpins - s.Used
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Purchase struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID      int64           `gorm:"column:user_id;not null;index:idx_purchase_user_time,priority:1;uniqueIndex:idx_purchase_order,priority:1" json:"user_id,string"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Currency    string          `gorm:"column:currency;size:8;not null" json:"currency"`
	Name        string          `gorm:"column:name;size:255" json:"name,omitempty"`
	Category    string          `gorm:"column:category;size:64" json:"category,omitempty"`
	OrderID     *string         `gorm:"column:order_id;size:128;uniqueIndex:idx_purchase_order,priority:2" json:"order_id,omitempty"`
	XP          int64           `gorm:"column:xp;not null" json:"xp"`
	PurchasedAt time.Time       `gorm:"column:purchased_at;not null;index:idx_purchase_user_time,priority:2" json:"purchased_at"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

func (p *Purchase) BeforeCreate(*gorm.DB) error {
	nextID(&p.ID)
	return nil
}

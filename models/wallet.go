package models

import (
	"time"

	"gorm.io/gorm"
)

const ChainEthereum = "ethereum"

type Wallet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id,string"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id,string"`
	Address   string    `gorm:"column:address;size:64;not null;uniqueIndex" json:"address"`
	Chain     string    `gorm:"column:chain;size:32;not null" json:"chain"`
	Type      string    `gorm:"column:type;size:32" json:"type,omitempty"`
	Verified  bool      `gorm:"column:verified;not null;default:false" json:"verified"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false" json:"is_primary"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}

func (w *Wallet) BeforeCreate(*gorm.DB) error {
	nextID(&w.ID)
	return nil
}

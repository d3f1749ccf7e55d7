package models

import (
	"time"

	"gorm.io/gorm"
)

type Streak struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex" json:"user_id,string"`
	Current      int       `gorm:"column:current;not null;default:0" json:"current"`
	Best         int       `gorm:"column:best;not null;default:0" json:"best"`
	LastPurchase *string   `gorm:"column:last_purchase;size:10" json:"last_purchase,omitempty"` // YYYY-MM-DD
	FreezesUsed  int       `gorm:"column:freezes_used;not null;default:0" json:"freezes_used"`
	Multiplier   float64   `gorm:"column:multiplier;not null;default:1" json:"multiplier"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Streak) TableName() string {
	return "streaks"
}

func (s *Streak) BeforeCreate(*gorm.DB) error {
	nextID(&s.ID)
	return nil
}

func NewStreak(userID int64) *Streak {
	return &Streak{
		UserID:     userID,
		Multiplier: 1,
	}
}

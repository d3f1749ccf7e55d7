package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Stats struct {
	ID               int64                       `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID           int64                       `gorm:"column:user_id;not null;uniqueIndex" json:"user_id,string"`
	Level            int                         `gorm:"column:level;not null;default:1" json:"level"`
	XP               int64                       `gorm:"column:xp;not null;default:0;index" json:"xp"`
	Achievements     datatypes.JSONSlice[string] `gorm:"column:achievements" json:"achievements"`
	FavoriteCategory *string                     `gorm:"column:favorite_category;size:64" json:"favorite_category,omitempty"`
	SpinsWon         int                         `gorm:"column:spins_won;not null;default:0" json:"spins_won"`
	BestSpin         int64                       `gorm:"column:best_spin;not null;default:0" json:"best_spin"`
	CreatedAt        time.Time                   `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Stats) TableName() string {
	return "stats"
}

func (s *Stats) BeforeCreate(*gorm.DB) error {
	nextID(&s.ID)
	return nil
}

// NewStats 新用户的初始统计
func NewStats(userID int64) *Stats {
	return &Stats{
		UserID:       userID,
		Level:        1,
		XP:           0,
		Achievements: datatypes.JSONSlice[string]{},
	}
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RewardTypeStreak = "streak"
	RewardTypeSpin   = "spin"

	RewardStatusClaimable = "claimable"
	RewardStatusClaimed   = "claimed"
	RewardStatusUsed      = "used"
)

func ValidRewardStatus(s string) bool {
	switch s {
	case RewardStatusClaimable, RewardStatusClaimed, RewardStatusUsed:
		return true
	}
	return false
}

// Reward 奖励. Milestone is only set for streak rewards, Rarity and Color
// only for spin rewards. (user_id, reward_type, milestone) is unique, which
// makes each milestone a one-time bonus; spin rewards have a NULL milestone
// and never collide.
type Reward struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:idx_reward_milestone,priority:1" json:"user_id,string"`
	RewardType string    `gorm:"column:reward_type;size:16;not null;uniqueIndex:idx_reward_milestone,priority:2" json:"reward_type"`
	Name       string    `gorm:"column:name;size:128" json:"name"`
	Amount     int64     `gorm:"column:amount;not null" json:"amount"`
	Milestone  *int      `gorm:"column:milestone;uniqueIndex:idx_reward_milestone,priority:3" json:"milestone,omitempty"`
	Rarity     string    `gorm:"column:rarity;size:32" json:"rarity,omitempty"`
	Color      string    `gorm:"column:color;size:16" json:"color,omitempty"`
	Status     string    `gorm:"column:status;size:16;not null;index" json:"status"`
	Code       string    `gorm:"column:code;size:32" json:"code,omitempty"`
	ReceivedAt time.Time `gorm:"column:received_at;not null" json:"received_at"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Reward) TableName() string {
	return "rewards"
}

func (r *Reward) BeforeCreate(*gorm.DB) error {
	nextID(&r.ID)
	return nil
}

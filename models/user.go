package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id,string"`
	Username    string    `gorm:"column:username;size:64;not null" json:"username"`
	Email       *string   `gorm:"column:email;size:255" json:"email,omitempty"`
	Avatar      string    `gorm:"column:avatar;size:512" json:"avatar,omitempty"`
	FarcasterID *string   `gorm:"column:farcaster_id;size:64" json:"farcaster_id,omitempty"`
	BitrefillID *string   `gorm:"column:bitrefill_id;size:64" json:"bitrefill_id,omitempty"`
	Connected   bool      `gorm:"column:connected;not null;default:false" json:"connected"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	nextID(&u.ID)
	return nil
}

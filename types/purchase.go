package types

import (
	"Giftspin/models"

	"github.com/shopspring/decimal"
)

type CreatePurchaseRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"omitempty,max=8"`
	Name     string          `json:"name" binding:"omitempty,max=255"`
	Category string          `json:"category" binding:"omitempty,max=64"`
	OrderID  string          `json:"order_id" binding:"omitempty,max=128"`
}

type CreatePurchaseOpt struct {
	Amount   decimal.Decimal
	Currency string
	Name     string
	Category string
	OrderID  string
}

// PurchaseResult 一次购买带来的全部变化
type PurchaseResult struct {
	Purchase        *models.Purchase  `json:"purchase"`
	Tickets         int               `json:"tickets"`
	XPGained        int64             `json:"xp_gained"`
	LeveledUp       bool              `json:"leveled_up"`
	Stats           *models.Stats     `json:"stats"`
	Streak          *models.Streak    `json:"streak"`
	MilestoneReward *models.Reward    `json:"milestone_reward,omitempty"`
	SpinLimit       *models.SpinLimit `json:"spin_limit,omitempty"`
}

type ListPurchasesResponse struct {
	Items []*models.Purchase `json:"items"`
}

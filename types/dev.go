package types

import "github.com/shopspring/decimal"

type TimeTravelRequest struct {
	Days int `json:"days" binding:"required,min=1,max=365"`
}

type TimeTravelResponse struct {
	OffsetSeconds int64  `json:"offset_seconds"`
	Now           string `json:"now"`
	Today         string `json:"today"`
}

type DevPurchaseRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
}

type ResetResult struct {
	PurchasesDeleted  int64 `json:"purchases_deleted"`
	RewardsDeleted    int64 `json:"rewards_deleted"`
	SpinLimitsDeleted int64 `json:"spin_limits_deleted"`
	WalletsKept       int   `json:"wallets_kept"`
}

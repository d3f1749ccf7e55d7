package types

import (
	"Giftspin/models"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CouponKindDiscount = "discount"
	CouponKindFreebie  = "freebie"
)

type SpinLimitView struct {
	Date           string          `json:"date"`
	Used           int             `json:"used"`
	MaxSpins       int             `json:"max_spins"`
	Remaining      int             `json:"remaining"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
	CanSpin        bool            `json:"can_spin"`
}

func NewSpinLimitView(s *models.SpinLimit) *SpinLimitView {
	if s == nil {
		return nil
	}
	return &SpinLimitView{
		Date:           s.Date,
		Used:           s.Used,
		MaxSpins:       s.MaxSpins,
		Remaining:      s.Remaining(),
		PurchaseAmount: s.PurchaseAmount,
		CanSpin:        s.Used < s.MaxSpins,
	}
}

type WheelSegment struct {
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Weight int     `json:"weight"`
	Chance float64 `json:"chance"` // percent, 2 dp
}

type SpinResult struct {
	SegmentIndex int            `json:"segment_index"`
	Label        string         `json:"label"`
	Win          bool           `json:"win"`
	Kind         string         `json:"kind,omitempty"`
	Value        int64          `json:"value,omitempty"`
	Reward       *models.Reward `json:"reward,omitempty"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
	SpinLimit    *SpinLimitView `json:"spin_limit"`
}

package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/log"
	"Giftspin/types"
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	discountLabel = regexp.MustCompile(`^(\d+)% OFF$`)
	freebieLabel  = regexp.MustCompile(`^\$(\d+) FREE$`)
)

// parsePrize 解析扇区文案, ok is false for losing segments such as TRY AGAIN.
func parsePrize(label string) (kind string, value int64, ok bool) {
	if m := discountLabel.FindStringSubmatch(label); m != nil {
		v, _ := strconv.ParseInt(m[1], 10, 64)
		return types.CouponKindDiscount, v, true
	}
	if m := freebieLabel.FindStringSubmatch(label); m != nil {
		v, _ := strconv.ParseInt(m[1], 10, 64)
		return types.CouponKindFreebie, v, true
	}
	return "", 0, false
}

// PickSegment 按权重选择扇区. r must be in [0, total weight).
func PickSegment(wheel []config.WheelSegment, r int) int {
	for i, seg := range wheel {
		if seg.Weight <= 0 {
			continue
		}
		if r < seg.Weight {
			return i
		}
		r -= seg.Weight
	}
	return len(wheel) - 1
}

func totalWeight(wheel []config.WheelSegment) int {
	total := 0
	for _, seg := range wheel {
		total += max(seg.Weight, 0)
	}
	return total
}

var _ ISpinService = (*SpinService)(nil)

type ISpinService interface {
	Wheel() []types.WheelSegment
	Spin(ctx context.Context, userID int64) (*types.SpinResult, error)
}

type SpinService struct {
	db        *gorm.DB
	config    *config.Loyalty
	clock     *clock.Clock
	purchases *PurchaseService
	rewards   *RewardService
	stats     *StatsService
	intn      func(n int) int
}

func NewSpinService(db *gorm.DB, conf *config.Loyalty, clk *clock.Clock, purchases *PurchaseService, rewards *RewardService, stats *StatsService) *SpinService {
	return &SpinService{
		db:        db,
		config:    conf,
		clock:     clk,
		purchases: purchases,
		rewards:   rewards,
		stats:     stats,
		intn:      rand.IntN,
	}
}

// WithRand 替换随机源
func (s *SpinService) WithRand(intn func(n int) int) *SpinService {
	s.intn = intn
	return s
}

func (s *SpinService) Wheel() []types.WheelSegment {
	total := totalWeight(s.config.Wheel)
	out := make([]types.WheelSegment, 0, len(s.config.Wheel))
	for i, seg := range s.config.Wheel {
		chance := 0.0
		if total > 0 {
			chance = math.Round(float64(max(seg.Weight, 0))/float64(total)*10000) / 100
		}
		out = append(out, types.WheelSegment{
			Index:  i,
			Label:  seg.Label,
			Color:  seg.Color,
			Weight: seg.Weight,
			Chance: chance,
		})
	}
	return out
}

// Spin 服务端抽奖: the spin is consumed, the segment drawn and any prize
// recorded in a single transaction.
func (s *SpinService) Spin(ctx context.Context, userID int64) (*types.SpinResult, error) {
	total := totalWeight(s.config.Wheel)
	if total <= 0 {
		return nil, errors.New("wheel has no weighted segments")
	}

	result := &types.SpinResult{}
	err := dao.Transaction(ctx, s.db, func(ctx context.Context) error {
		limit, err := s.purchases.UseSpin(ctx, userID)
		if err != nil {
			return err
		}
		result.SpinLimit = types.NewSpinLimitView(limit)

		idx := PickSegment(s.config.Wheel, s.intn(total))
		seg := s.config.Wheel[idx]
		result.SegmentIndex = idx
		result.Label = seg.Label

		kind, value, ok := parsePrize(seg.Label)
		if !ok {
			return nil
		}
		reward, err := s.rewards.CreateSpinReward(ctx, userID, seg.Label, value, seg.Color)
		if err != nil {
			return err
		}
		if err := s.stats.RecordSpinWin(ctx, userID, value); err != nil {
			return err
		}

		expires := reward.ReceivedAt.Add(time.Duration(s.config.CouponTTLDays) * 24 * time.Hour)
		result.Win = true
		result.Kind = kind
		result.Value = value
		result.Reward = reward
		result.ExpiresAt = &expires
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "try_again"
	if result.Win {
		outcome = "win"
	}
	spinsTotal.WithLabelValues(outcome).Inc()
	log.L.Info("wheel spun",
		zap.Int64("user_id", userID),
		zap.Int("segment", result.SegmentIndex),
		zap.String("label", result.Label),
	)
	return result, nil
}

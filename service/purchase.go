package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/models"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/log"
	"Giftspin/types"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPurchaseLimit = 10
	maxPurchaseLimit     = 50
	defaultCurrency      = "USD"
)

var _ IPurchaseService = (*PurchaseService)(nil)

type IPurchaseService interface {
	Create(ctx context.Context, userID int64, opt *types.CreatePurchaseOpt) (*types.PurchaseResult, error)
	List(ctx context.Context, userID int64, limit int) ([]*models.Purchase, error)
	TodaySpinLimit(ctx context.Context, userID int64) (*models.SpinLimit, error)
	UseSpin(ctx context.Context, userID int64) (*models.SpinLimit, error)
	CanSpin(ctx context.Context, userID int64) (bool, error)
}

type PurchaseService struct {
	DB            *gorm.DB
	Config        *config.Loyalty
	Clock         *clock.Clock
	PurchaseRepo  *dao.PurchaseDAO
	SpinLimitRepo *dao.SpinLimitDAO
	Streaks       *StreakService
	Stats         *StatsService
	Leaderboard   *LeaderboardService
}

// Tickets 每满 dollarsPerTicket 美元得一张转盘券
func Tickets(amount decimal.Decimal, dollarsPerTicket int64) int {
	if dollarsPerTicket <= 0 || !amount.IsPositive() {
		return 0
	}
	return int(amount.Div(decimal.NewFromInt(dollarsPerTicket)).Floor().IntPart())
}

// Create 记录一笔购买. Streak, XP and today's spin limit move together in one
// transaction; the leaderboard is updated after commit.
func (s *PurchaseService) Create(ctx context.Context, userID int64, opt *types.CreatePurchaseOpt) (*types.PurchaseResult, error) {
	// 金额按分存储, xp and tickets are derived from the stored value.
	amount := opt.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(opt.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	purchase := &models.Purchase{
		UserID:      userID,
		Amount:      amount,
		Currency:    currency,
		Name:        opt.Name,
		Category:    opt.Category,
		XP:          amount.Floor().IntPart(),
		PurchasedAt: s.Clock.Now(),
	}
	if opt.OrderID != "" {
		purchase.OrderID = &opt.OrderID
	}

	result := &types.PurchaseResult{
		Purchase: purchase,
		Tickets:  Tickets(amount, s.Config.DollarsPerTicket),
		XPGained: purchase.XP,
	}

	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if purchase.OrderID != nil {
			exists, err := s.PurchaseRepo.OrderExists(ctx, userID, *purchase.OrderID)
			if err != nil {
				return fmt.Errorf("check order: %w", err)
			}
			if exists {
				return ErrDuplicateOrder
			}
		}
		if err := s.PurchaseRepo.Create(ctx, purchase); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateOrder
			}
			return fmt.Errorf("create purchase: %w", err)
		}

		var err error
		result.Streak, result.MilestoneReward, err = s.Streaks.UpdateAfterPurchase(ctx, userID)
		if err != nil {
			return err
		}

		result.Stats, result.LeveledUp, err = s.Stats.addXP(ctx, userID, purchase.XP)
		if err != nil {
			return err
		}
		if opt.Category != "" {
			favorite, err := s.PurchaseRepo.TopCategory(ctx, userID)
			if err != nil {
				return fmt.Errorf("top category: %w", err)
			}
			if err := s.Stats.UpdateFavoriteCategory(ctx, userID, favorite); err != nil {
				return err
			}
			result.Stats.FavoriteCategory = &favorite
		}

		if result.Tickets > 0 {
			limit, err := s.SpinLimitRepo.Ensure(ctx, userID, s.Clock.Today(), 0)
			if err != nil {
				return fmt.Errorf("load spin limit: %w", err)
			}
			if err := s.SpinLimitRepo.AddPurchase(ctx, limit, purchase.Amount, result.Tickets, s.Config.MaxDailySpins); err != nil {
				return fmt.Errorf("update spin limit: %w", err)
			}
			result.SpinLimit = limit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	purchasesTotal.Inc()
	s.Leaderboard.Sync(ctx, userID, result.Stats.XP)
	log.L.Info("purchase recorded",
		zap.Int64("user_id", userID),
		zap.String("amount", purchase.Amount.String()),
		zap.Int("tickets", result.Tickets),
		zap.Int("streak", result.Streak.Current),
	)
	return result, nil
}

func (s *PurchaseService) List(ctx context.Context, userID int64, limit int) ([]*models.Purchase, error) {
	if limit <= 0 {
		limit = defaultPurchaseLimit
	}
	return s.PurchaseRepo.ListRecent(ctx, userID, min(limit, maxPurchaseLimit))
}

// initialGrant min(cap, floor(最近 N 笔消费之和 / divisor))
func (s *PurchaseService) initialGrant(ctx context.Context, userID int64) (int, error) {
	sum, err := s.PurchaseRepo.SumRecent(ctx, userID, s.Config.InitialGrantWindow)
	if err != nil {
		return 0, err
	}
	grant := sum.Div(decimal.NewFromInt(s.Config.InitialGrantDivisor)).Floor().IntPart()
	return int(min(grant, int64(s.Config.MaxDailySpins))), nil
}

// TodaySpinLimit 当日额度, creating the row with the initial grant on first
// access of the day.
func (s *PurchaseService) TodaySpinLimit(ctx context.Context, userID int64) (*models.SpinLimit, error) {
	today := s.Clock.Today()
	limit, err := s.SpinLimitRepo.Get(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("load spin limit: %w", err)
	}
	if limit != nil {
		return limit, nil
	}

	err = dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		grant, err := s.initialGrant(ctx, userID)
		if err != nil {
			return fmt.Errorf("initial grant: %w", err)
		}
		limit, err = s.SpinLimitRepo.Ensure(ctx, userID, today, grant)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create spin limit: %w", err)
	}
	return limit, nil
}

// UseSpin 消耗一次转盘机会
func (s *PurchaseService) UseSpin(ctx context.Context, userID int64) (*models.SpinLimit, error) {
	if _, err := s.TodaySpinLimit(ctx, userID); err != nil {
		return nil, err
	}
	today := s.Clock.Today()
	ok, err := s.SpinLimitRepo.UseSpin(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("use spin: %w", err)
	}
	if !ok {
		return nil, ErrNoSpinsLeft
	}
	limit, err := s.SpinLimitRepo.Get(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("load spin limit: %w", err)
	}
	return limit, nil
}

func (s *PurchaseService) CanSpin(ctx context.Context, userID int64) (bool, error) {
	limit, err := s.TodaySpinLimit(ctx, userID)
	if err != nil {
		return false, err
	}
	return limit.Used < limit.MaxSpins, nil
}

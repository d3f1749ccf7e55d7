package service

import (
	"Giftspin/dao"
	"Giftspin/models"
	"Giftspin/pkg/log"
	"Giftspin/types"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ICleanupService = (*CleanupService)(nil)

type ICleanupService interface {
	Reset(ctx context.Context, userID int64) (*types.ResetResult, error)
}

// CleanupService 重置账户到初始状态, keeping the user and its first wallet.
type CleanupService struct {
	DB            *gorm.DB
	UsersRepo     *dao.Users
	WalletsRepo   *dao.Wallets
	PurchaseRepo  *dao.PurchaseDAO
	RewardRepo    *dao.RewardDAO
	SpinLimitRepo *dao.SpinLimitDAO
	StatsRepo     *dao.StatsDAO
	StreakRepo    *dao.StreakDAO
	Leaderboard   *LeaderboardService
}

func (s *CleanupService) Reset(ctx context.Context, userID int64) (*types.ResetResult, error) {
	result := &types.ResetResult{}
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if _, err := s.UsersRepo.GetByID(ctx, userID); err != nil {
			if dao.IsNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}

		var err error
		if result.SpinLimitsDeleted, err = s.SpinLimitRepo.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete spin limits: %w", err)
		}
		if result.PurchasesDeleted, err = s.PurchaseRepo.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete purchases: %w", err)
		}
		if result.RewardsDeleted, err = s.RewardRepo.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete rewards: %w", err)
		}

		wallets, err := s.WalletsRepo.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list wallets: %w", err)
		}
		if _, err := s.WalletsRepo.DeleteWhere(ctx, "user_id = ?", userID); err != nil {
			return fmt.Errorf("delete wallets: %w", err)
		}
		if len(wallets) > 0 {
			primary := &models.Wallet{
				UserID:    userID,
				Address:   wallets[0].Address,
				Chain:     models.ChainEthereum,
				Type:      wallets[0].Type,
				Verified:  true,
				IsPrimary: true,
			}
			if err := s.WalletsRepo.Create(ctx, primary); err != nil {
				return fmt.Errorf("recreate wallet: %w", err)
			}
			result.WalletsKept = 1
		}

		if _, err := s.StreakRepo.GetOrCreate(ctx, userID); err != nil {
			return fmt.Errorf("load streak: %w", err)
		}
		if err := s.StreakRepo.Reset(ctx, userID); err != nil {
			return fmt.Errorf("reset streak: %w", err)
		}
		if _, err := s.StatsRepo.GetOrCreate(ctx, userID); err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if err := s.StatsRepo.Reset(ctx, userID); err != nil {
			return fmt.Errorf("reset stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Leaderboard.Remove(ctx, userID)
	log.L.Info("account reset",
		zap.Int64("user_id", userID),
		zap.Int64("purchases", result.PurchasesDeleted),
		zap.Int64("rewards", result.RewardsDeleted),
	)
	return result, nil
}

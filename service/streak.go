package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/models"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IStreakService = (*StreakService)(nil)

type IStreakService interface {
	Get(ctx context.Context, userID int64) (*models.Streak, error)
	UpdateAfterPurchase(ctx context.Context, userID int64) (*models.Streak, *models.Reward, error)
	CheckMilestones(ctx context.Context, userID int64, current int) (*models.Reward, error)
	Rewards(ctx context.Context, userID int64) ([]*models.Reward, error)
	Claim(ctx context.Context, userID, rewardID int64) (*models.Reward, error)
}

type StreakService struct {
	DB            *gorm.DB
	Config        *config.Loyalty
	Clock         *clock.Clock
	StreakRepo    *dao.StreakDAO
	RewardRepo    *dao.RewardDAO
	RewardService *RewardService
}

func (s *StreakService) Get(ctx context.Context, userID int64) (*models.Streak, error) {
	return s.StreakRepo.GetOrCreate(ctx, userID)
}

// advanceStreak 按日期差推进连胜, reports whether the streak changed.
func advanceStreak(streak *models.Streak, today string) (bool, error) {
	if streak.LastPurchase == nil || *streak.LastPurchase == "" {
		streak.Current = 1
		streak.Best = max(streak.Best, 1)
		streak.LastPurchase = &today
		return true, nil
	}

	diff, err := clock.DayDiff(*streak.LastPurchase, today)
	if err != nil {
		return false, err
	}
	switch {
	case diff <= 0: // same day, or the clock went backwards
		return false, nil
	case diff == 1:
		streak.Current++
	default:
		streak.Current = 1
	}
	streak.Best = max(streak.Best, streak.Current)
	streak.LastPurchase = &today
	return true, nil
}

// milestoneFor 返回不超过 current 的最高档位
func milestoneFor(milestones []config.Milestone, current int) (config.Milestone, bool) {
	var (
		best  config.Milestone
		found bool
	)
	for _, m := range milestones {
		if m.Days <= current && (!found || m.Days > best.Days) {
			best, found = m, true
		}
	}
	return best, found
}

// UpdateAfterPurchase 购买后更新连胜并检查里程碑
func (s *StreakService) UpdateAfterPurchase(ctx context.Context, userID int64) (*models.Streak, *models.Reward, error) {
	var (
		streak *models.Streak
		reward *models.Reward
	)
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		streak, err = s.StreakRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}

		changed, err := advanceStreak(streak, s.Clock.Today())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.StreakRepo.Save(ctx, streak); err != nil {
			return fmt.Errorf("save streak: %w", err)
		}

		reward, err = s.CheckMilestones(ctx, userID, streak.Current)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return streak, reward, nil
}

// CheckMilestones returns the newly issued reward, or nil.
func (s *StreakService) CheckMilestones(ctx context.Context, userID int64, current int) (*models.Reward, error) {
	m, ok := milestoneFor(s.Config.Milestones, current)
	if !ok {
		return nil, nil
	}
	exists, err := s.RewardRepo.HasMilestone(ctx, userID, m.Days)
	if err != nil {
		return nil, fmt.Errorf("check milestone: %w", err)
	}
	if exists {
		return nil, nil
	}

	reward, err := s.RewardService.CreateStreakReward(ctx, userID, m.Amount, m.Days, models.RewardStatusClaimable)
	if err != nil {
		return nil, err
	}
	if reward != nil {
		log.L.Info("streak milestone reached",
			zap.Int64("user_id", userID),
			zap.Int("days", m.Days),
			zap.Int64("amount", m.Amount),
		)
	}
	return reward, nil
}

func (s *StreakService) Rewards(ctx context.Context, userID int64) ([]*models.Reward, error) {
	return s.RewardRepo.ListByType(ctx, userID, models.RewardTypeStreak)
}

// Claim claimable -> claimed
func (s *StreakService) Claim(ctx context.Context, userID, rewardID int64) (*models.Reward, error) {
	ok, err := s.RewardRepo.Claim(ctx, userID, rewardID)
	if err != nil {
		return nil, fmt.Errorf("claim reward: %w", err)
	}
	if !ok {
		return nil, ErrNotClaimable
	}
	return s.RewardRepo.GetByID(ctx, userID, rewardID)
}

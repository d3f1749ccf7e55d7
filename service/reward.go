package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/models"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/snowflake"
	"Giftspin/pkg/utils"
	"context"
	"fmt"
)

const spinRewardRarity = "common"

var _ IRewardService = (*RewardService)(nil)

type IRewardService interface {
	List(ctx context.Context, userID int64, status string) ([]*models.Reward, error)
	Claimable(ctx context.Context, userID int64) ([]*models.Reward, error)
	CreateSpinReward(ctx context.Context, userID int64, label string, amount int64, color string) (*models.Reward, error)
	CreateStreakReward(ctx context.Context, userID int64, amount int64, milestone int, status string) (*models.Reward, error)
	UpdateStatus(ctx context.Context, userID, rewardID int64, status string) (*models.Reward, error)
	Use(ctx context.Context, userID, rewardID int64) (*models.Reward, error)
}

type RewardService struct {
	Config     *config.Loyalty
	Clock      *clock.Clock
	RewardRepo *dao.RewardDAO
}

func (s *RewardService) List(ctx context.Context, userID int64, status string) ([]*models.Reward, error) {
	if status != "" && !models.ValidRewardStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.RewardRepo.List(ctx, userID, status)
}

func (s *RewardService) Claimable(ctx context.Context, userID int64) ([]*models.Reward, error) {
	return s.RewardRepo.List(ctx, userID, models.RewardStatusClaimable)
}

// CreateSpinReward 转盘奖励, carries a coupon code derived from its id.
func (s *RewardService) CreateSpinReward(ctx context.Context, userID int64, label string, amount int64, color string) (*models.Reward, error) {
	id := snowflake.GenID()
	reward := &models.Reward{
		ID:         id,
		UserID:     userID,
		RewardType: models.RewardTypeSpin,
		Name:       "Spin Wheel Prize: " + label,
		Amount:     amount,
		Rarity:     spinRewardRarity,
		Color:      color,
		Status:     models.RewardStatusClaimable,
		Code:       "SPIN" + utils.GenHashID(s.Config.CouponSalt, id),
		ReceivedAt: s.Clock.Now(),
	}
	if err := s.RewardRepo.Create(ctx, reward); err != nil {
		return nil, fmt.Errorf("create spin reward: %w", err)
	}
	rewardsIssuedTotal.WithLabelValues(models.RewardTypeSpin).Inc()
	return reward, nil
}

// CreateStreakReward returns nil, nil when the milestone was already issued.
func (s *RewardService) CreateStreakReward(ctx context.Context, userID int64, amount int64, milestone int, status string) (*models.Reward, error) {
	if status == "" {
		status = models.RewardStatusClaimable
	}
	if !models.ValidRewardStatus(status) {
		return nil, ErrInvalidStatus
	}
	reward := &models.Reward{
		UserID:     userID,
		RewardType: models.RewardTypeStreak,
		Name:       fmt.Sprintf("%d-Day Streak Bonus", milestone),
		Amount:     amount,
		Milestone:  &milestone,
		Status:     status,
		ReceivedAt: s.Clock.Now(),
	}
	created, err := s.RewardRepo.CreateOnce(ctx, reward)
	if err != nil {
		return nil, fmt.Errorf("create streak reward: %w", err)
	}
	if !created {
		return nil, nil
	}
	rewardsIssuedTotal.WithLabelValues(models.RewardTypeStreak).Inc()
	return reward, nil
}

func (s *RewardService) UpdateStatus(ctx context.Context, userID, rewardID int64, status string) (*models.Reward, error) {
	if !models.ValidRewardStatus(status) {
		return nil, ErrInvalidStatus
	}
	reward, err := s.RewardRepo.GetByID(ctx, userID, rewardID)
	if dao.IsNotFound(err) {
		return nil, ErrRewardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load reward: %w", err)
	}
	// MySQL reports 0 affected rows for an unchanged value
	if reward.Status == status {
		return reward, nil
	}
	if _, err := s.RewardRepo.SetStatus(ctx, userID, rewardID, status); err != nil {
		return nil, fmt.Errorf("update reward status: %w", err)
	}
	reward.Status = status
	return reward, nil
}

// Use 标记为已使用, a used reward cannot be used again.
func (s *RewardService) Use(ctx context.Context, userID, rewardID int64) (*models.Reward, error) {
	ok, err := s.RewardRepo.SetStatus(ctx, userID, rewardID, models.RewardStatusUsed,
		models.RewardStatusClaimable, models.RewardStatusClaimed)
	if err != nil {
		return nil, fmt.Errorf("use reward: %w", err)
	}
	if !ok {
		if _, err := s.RewardRepo.GetByID(ctx, userID, rewardID); dao.IsNotFound(err) {
			return nil, ErrRewardNotFound
		}
		return nil, ErrNotClaimable
	}
	return s.RewardRepo.GetByID(ctx, userID, rewardID)
}

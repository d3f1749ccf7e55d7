package dao

import (
	"Giftspin/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardDAO struct {
	Repo[models.Reward]
}

func NewRewardDAO(db *gorm.DB) *RewardDAO {
	return &RewardDAO{
		Repo: NewRepo[models.Reward](db),
	}
}

// CreateOnce 插入奖励, a conflicting (user, type, milestone) row is ignored.
// Reports whether a new row was written.
func (d *RewardDAO) CreateOnce(ctx context.Context, reward *models.Reward) (bool, error) {
	res := d.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "reward_type"}, {Name: "milestone"}},
			DoNothing: true,
		}).
		Create(reward)
	return res.RowsAffected > 0, res.Error
}

func (d *RewardDAO) HasMilestone(ctx context.Context, userID int64, milestone int) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND reward_type = ? AND milestone = ?", userID, models.RewardTypeStreak, milestone)
}

// List 按状态过滤, empty status returns everything.
func (d *RewardDAO) List(ctx context.Context, userID int64, status string) ([]*models.Reward, error) {
	var items []*models.Reward
	q := d.DB(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("received_at DESC, id DESC").Find(&items).Error
	return items, err
}

// Claim 仅 claimable 状态可领取
func (d *RewardDAO) Claim(ctx context.Context, userID, rewardID int64) (bool, error) {
	res := d.Model(ctx).
		Where("id = ? AND user_id = ? AND status = ?", rewardID, userID, models.RewardStatusClaimable).
		Update("status", models.RewardStatusClaimed)
	return res.RowsAffected > 0, res.Error
}

func (d *RewardDAO) GetByID(ctx context.Context, userID, rewardID int64) (*models.Reward, error) {
	return d.FindByWhere(ctx, "id = ? AND user_id = ?", rewardID, userID)
}

func (d *RewardDAO) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return d.DeleteWhere(ctx, "user_id = ?", userID)
}

func (d *RewardDAO) ListByType(ctx context.Context, userID int64, rewardType string) ([]*models.Reward, error) {
	var items []*models.Reward
	err := d.DB(ctx).
		Where("user_id = ? AND reward_type = ?", userID, rewardType).
		Order("received_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// SetStatus 状态流转, only rows whose current status is in from are touched.
func (d *RewardDAO) SetStatus(ctx context.Context, userID, rewardID int64, status string, from ...string) (bool, error) {
	q := d.Model(ctx).Where("id = ? AND user_id = ?", rewardID, userID)
	if len(from) > 0 {
		q = q.Where("status IN ?", from)
	}
	res := q.Update("status", status)
	return res.RowsAffected > 0, res.Error
}

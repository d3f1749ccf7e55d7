package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/models"
	"Giftspin/pkg/log"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultXPPerLevel = 1000

// levelFor 等级 = 1 + floor(xp / perLevel)
func levelFor(xp int64, perLevel int64) int {
	if perLevel <= 0 {
		perLevel = defaultXPPerLevel
	}
	if xp < 0 {
		xp = 0
	}
	return 1 + int(xp/perLevel)
}

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	Get(ctx context.Context, userID int64) (*models.Stats, error)
	AddXP(ctx context.Context, userID int64, xp int64) (*models.Stats, bool, error)
	AddAchievement(ctx context.Context, userID int64, name string) (*models.Stats, error)
	RecordSpinWin(ctx context.Context, userID int64, value int64) error
	UpdateFavoriteCategory(ctx context.Context, userID int64, category string) error
}

type StatsService struct {
	DB          *gorm.DB
	Config      *config.Loyalty
	StatsRepo   *dao.StatsDAO
	Leaderboard *LeaderboardService
}

func (s *StatsService) Get(ctx context.Context, userID int64) (*models.Stats, error) {
	return s.StatsRepo.GetOrCreate(ctx, userID)
}

// AddXP 第二个返回值表示是否升级
func (s *StatsService) AddXP(ctx context.Context, userID int64, xp int64) (*models.Stats, bool, error) {
	var (
		stats    *models.Stats
		levelled bool
	)
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		stats, levelled, err = s.addXP(ctx, userID, xp)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	s.Leaderboard.Sync(ctx, userID, stats.XP)
	return stats, levelled, nil
}

// addXP must run inside a transaction, the caller syncs the leaderboard
// after commit.
func (s *StatsService) addXP(ctx context.Context, userID int64, xp int64) (*models.Stats, bool, error) {
	stats, err := s.StatsRepo.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("load stats: %w", err)
	}
	if xp < 0 {
		xp = 0
	}
	stats.XP += xp

	levelled := false
	if level := levelFor(stats.XP, s.Config.XpPerLevel); level > stats.Level {
		levelled = true
		log.L.Info("level up",
			zap.Int64("user_id", userID),
			zap.Int("from", stats.Level),
			zap.Int("to", level),
			zap.Int64("xp", stats.XP),
		)
		stats.Level = level
		if name := fmt.Sprintf("level_%d", level); !slices.Contains(stats.Achievements, name) {
			stats.Achievements = append(stats.Achievements, name)
		}
	}

	if err := s.StatsRepo.Save(ctx, stats); err != nil {
		return nil, false, fmt.Errorf("save stats: %w", err)
	}
	return stats, levelled, nil
}

// AddAchievement 幂等
func (s *StatsService) AddAchievement(ctx context.Context, userID int64, name string) (*models.Stats, error) {
	var stats *models.Stats
	err := dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		var err error
		stats, err = s.StatsRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if slices.Contains(stats.Achievements, name) {
			return nil
		}
		stats.Achievements = append(stats.Achievements, name)
		return s.StatsRepo.Save(ctx, stats)
	})
	return stats, err
}

func (s *StatsService) RecordSpinWin(ctx context.Context, userID int64, value int64) error {
	if err := s.StatsRepo.RecordSpinWin(ctx, userID, value); err != nil {
		return fmt.Errorf("record spin win: %w", err)
	}
	return nil
}

func (s *StatsService) UpdateFavoriteCategory(ctx context.Context, userID int64, category string) error {
	if category == "" {
		return nil
	}
	if _, err := s.StatsRepo.GetOrCreate(ctx, userID); err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	return s.StatsRepo.Model(ctx).
		Where("user_id = ?", userID).
		Update("favorite_category", category).Error
}

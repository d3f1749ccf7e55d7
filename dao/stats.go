package dao

import (
	"Giftspin/models"
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsDAO struct {
	Repo[models.Stats]
}

func NewStatsDAO(db *gorm.DB) *StatsDAO {
	return &StatsDAO{
		Repo: NewRepo[models.Stats](db),
	}
}

// GetOrCreate 获取或创建用户统计
func (d *StatsDAO) GetOrCreate(ctx context.Context, userID int64) (*models.Stats, error) {
	stats := models.NewStats(userID)
	err := d.DB(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(stats).Error
	return stats, err
}

// GetForUpdate 行锁读取, must run inside Transaction.
func (d *StatsDAO) GetForUpdate(ctx context.Context, userID int64) (*models.Stats, error) {
	if _, err := d.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	var stats models.Stats
	err := d.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&stats).Error
	return &stats, err
}

func (d *StatsDAO) GetByUserID(ctx context.Context, userID int64) (*models.Stats, error) {
	return d.FindByWhere(ctx, "user_id = ?", userID)
}

func (d *StatsDAO) Save(ctx context.Context, stats *models.Stats) error {
	return d.DB(ctx).Save(stats).Error
}

// RecordSpinWin 原子地累加中奖次数并刷新最佳奖励
func (d *StatsDAO) RecordSpinWin(ctx context.Context, userID int64, amount int64) error {
	if _, err := d.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	return d.Model(ctx).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"spins_won": gorm.Expr("spins_won + 1"),
			"best_spin": gorm.Expr("CASE WHEN best_spin < ? THEN ? ELSE best_spin END", amount, amount),
		}).Error
}

// Reset 回到新用户状态
func (d *StatsDAO) Reset(ctx context.Context, userID int64) error {
	return d.Model(ctx).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"level":             1,
			"xp":                0,
			"achievements":      datatypes.JSONSlice[string]{},
			"favorite_category": nil,
			"spins_won":         0,
			"best_spin":         0,
		}).Error
}

type XPRank struct {
	UserID int64
	XP     int64
	Level  int
}

// TopByXP 数据库兜底的排行榜查询
func (d *StatsDAO) TopByXP(ctx context.Context, limit int) ([]XPRank, error) {
	var rows []XPRank
	err := d.Model(ctx).
		Select("user_id, xp, level").
		Order("xp DESC, user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CountAbove 统计经验值严格更高的用户数
func (d *StatsDAO) CountAbove(ctx context.Context, xp int64) (int64, error) {
	return d.FindCount(ctx, "xp > ?", xp)
}

// Ranked 有经验值的用户, the population of the leaderboard.
func (d *StatsDAO) Ranked(ctx context.Context) ([]*models.Stats, error) {
	return d.FindAll(ctx, "xp > ?", 0)
}

func (d *StatsDAO) CountRanked(ctx context.Context) (int64, error) {
	return d.FindCount(ctx, "xp > ?", 0)
}

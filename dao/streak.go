package dao

import (
	"Giftspin/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakDAO struct {
	Repo[models.Streak]
}

func NewStreakDAO(db *gorm.DB) *StreakDAO {
	return &StreakDAO{
		Repo: NewRepo[models.Streak](db),
	}
}

func (d *StreakDAO) GetOrCreate(ctx context.Context, userID int64) (*models.Streak, error) {
	streak := models.NewStreak(userID)
	err := d.DB(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(streak).Error
	return streak, err
}

// GetForUpdate 行锁读取, must run inside Transaction.
func (d *StreakDAO) GetForUpdate(ctx context.Context, userID int64) (*models.Streak, error) {
	if _, err := d.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	var streak models.Streak
	err := d.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&streak).Error
	return &streak, err
}

func (d *StreakDAO) Save(ctx context.Context, streak *models.Streak) error {
	return d.DB(ctx).Save(streak).Error
}

func (d *StreakDAO) Reset(ctx context.Context, userID int64) error {
	return d.Model(ctx).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"current":       0,
			"best":          0,
			"last_purchase": nil,
			"freezes_used":  0,
			"multiplier":    1,
		}).Error
}

package dao

import (
	"Giftspin/models"
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpinLimitDAO struct {
	Repo[models.SpinLimit]
}

func NewSpinLimitDAO(db *gorm.DB) *SpinLimitDAO {
	return &SpinLimitDAO{
		Repo: NewRepo[models.SpinLimit](db),
	}
}

// Get 当日额度, nil when the row does not exist yet.
func (d *SpinLimitDAO) Get(ctx context.Context, userID int64, date string) (*models.SpinLimit, error) {
	row, err := d.FindByWhere(ctx, "user_id = ? AND spin_date = ?", userID, date)
	if IsNotFound(err) {
		return nil, nil
	}
	return row, err
}

// Ensure 若当日记录不存在则以 maxSpins 创建, then returns the row locked for
// update. Must run inside Transaction.
func (d *SpinLimitDAO) Ensure(ctx context.Context, userID int64, date string, maxSpins int) (*models.SpinLimit, error) {
	row := &models.SpinLimit{
		UserID:         userID,
		Date:           date,
		MaxSpins:       maxSpins,
		PurchaseAmount: decimal.Zero,
	}
	err := d.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "spin_date"}},
			DoNothing: true,
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	var locked models.SpinLimit
	err = d.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND spin_date = ?", userID, date).
		First(&locked).Error
	return &locked, err
}

// AddPurchase 记入一笔购买, max_spins grows by tickets and is capped.
func (d *SpinLimitDAO) AddPurchase(ctx context.Context, row *models.SpinLimit, amount decimal.Decimal, tickets, maxCap int) error {
	row.MaxSpins = min(row.MaxSpins+tickets, maxCap)
	row.PurchaseAmount = row.PurchaseAmount.Add(amount)
	return d.Model(ctx).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"max_spins":       row.MaxSpins,
			"purchase_amount": row.PurchaseAmount,
		}).Error
}

// UseSpin 原子扣减, false when the day's spins are exhausted.
func (d *SpinLimitDAO) UseSpin(ctx context.Context, userID int64, date string) (bool, error) {
	res := d.Model(ctx).
		Where("user_id = ? AND spin_date = ? AND used < max_spins", userID, date).
		Update("used", gorm.Expr("used + 1"))
	return res.RowsAffected > 0, res.Error
}

func (d *SpinLimitDAO) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return d.DeleteWhere(ctx, "user_id = ?", userID)
}

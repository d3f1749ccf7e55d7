package dao

import (
	"Giftspin/models"
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseDAO struct {
	Repo[models.Purchase]
}

func NewPurchaseDAO(db *gorm.DB) *PurchaseDAO {
	return &PurchaseDAO{
		Repo: NewRepo[models.Purchase](db),
	}
}

// ListRecent 最近的购买记录, newest first.
func (d *PurchaseDAO) ListRecent(ctx context.Context, userID int64, limit int) ([]*models.Purchase, error) {
	var items []*models.Purchase
	err := d.DB(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// SumRecent 最近 n 笔购买金额之和
func (d *PurchaseDAO) SumRecent(ctx context.Context, userID int64, n int) (decimal.Decimal, error) {
	items, err := d.ListRecent(ctx, userID, n)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, p := range items {
		sum = sum.Add(p.Amount)
	}
	return sum, nil
}

func (d *PurchaseDAO) OrderExists(ctx context.Context, userID int64, orderID string) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND order_id = ?", userID, orderID)
}

type CategoryCount struct {
	Category string
	Total    int64
}

// TopCategory 购买次数最多的分类
func (d *PurchaseDAO) TopCategory(ctx context.Context, userID int64) (string, error) {
	var row CategoryCount
	err := d.Model(ctx).
		Select("category, COUNT(*) AS total").
		Where("user_id = ? AND category <> ''", userID).
		Group("category").
		Order("total DESC, category ASC").
		Limit(1).
		Scan(&row).Error
	return row.Category, err
}

func (d *PurchaseDAO) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return d.DeleteWhere(ctx, "user_id = ?", userID)
}

package dao

import (
	"Giftspin/models"
	"context"

	"gorm.io/gorm"
)

type Wallets struct {
	Repo[models.Wallet]
}

func NewWallets(db *gorm.DB) *Wallets {
	return &Wallets{
		Repo: NewRepo[models.Wallet](db),
	}
}

// FindByAddress 地址需为小写
func (w *Wallets) FindByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	return w.FindByWhere(ctx, "address = ?", address)
}

func (w *Wallets) ListByUser(ctx context.Context, userID int64) ([]*models.Wallet, error) {
	var items []*models.Wallet
	err := w.DB(ctx).Where("user_id = ?", userID).Order("is_primary DESC, created_at ASC").Find(&items).Error
	return items, err
}

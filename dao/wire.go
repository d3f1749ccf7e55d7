package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewWallets,
	NewStatsDAO,
	NewStreakDAO,
	NewPurchaseDAO,
	NewRewardDAO,
	NewSpinLimitDAO,
)

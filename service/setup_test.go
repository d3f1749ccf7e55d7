package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/dao/cache"
	"Giftspin/internal/testkit"
	"Giftspin/models"
	"Giftspin/pkg/clock"
	"Giftspin/types"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var day0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db    *gorm.DB
	mr    *miniredis.Miniredis
	clock *clock.Clock
	conf  *config.Loyalty

	users       *UserService
	leaderboard *LeaderboardService
	stats       *StatsService
	rewards     *RewardService
	streaks     *StreakService
	purchases   *PurchaseService
	spins       *SpinService
	cleanup     *CleanupService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg, err := config.Parse([]byte("app:\n  debug: true\n"))
	require.NoError(t, err)

	db := testkit.NewDB(t)
	mr, rds := testkit.NewRedis(t)
	clk := clock.NewFixed(day0)

	usersRepo := dao.NewUsers(db)
	walletsRepo := dao.NewWallets(db)
	statsRepo := dao.NewStatsDAO(db)
	streakRepo := dao.NewStreakDAO(db)
	purchaseRepo := dao.NewPurchaseDAO(db)
	rewardRepo := dao.NewRewardDAO(db)
	spinLimitRepo := dao.NewSpinLimitDAO(db)

	env := &testEnv{db: db, mr: mr, clock: clk, conf: cfg.Loyalty}
	env.users = &UserService{
		DB:          db,
		UsersRepo:   usersRepo,
		WalletsRepo: walletsRepo,
		StatsRepo:   statsRepo,
		StreakRepo:  streakRepo,
	}
	env.leaderboard = &LeaderboardService{
		Config:    cfg.Loyalty,
		Storage:   cache.NewLeaderboardStorage(rds),
		StatsRepo: statsRepo,
		UsersRepo: usersRepo,
	}
	env.stats = &StatsService{DB: db, Config: cfg.Loyalty, StatsRepo: statsRepo, Leaderboard: env.leaderboard}
	env.rewards = &RewardService{Config: cfg.Loyalty, Clock: clk, RewardRepo: rewardRepo}
	env.streaks = &StreakService{
		DB:            db,
		Config:        cfg.Loyalty,
		Clock:         clk,
		StreakRepo:    streakRepo,
		RewardRepo:    rewardRepo,
		RewardService: env.rewards,
	}
	env.purchases = &PurchaseService{
		DB:            db,
		Config:        cfg.Loyalty,
		Clock:         clk,
		PurchaseRepo:  purchaseRepo,
		SpinLimitRepo: spinLimitRepo,
		Streaks:       env.streaks,
		Stats:         env.stats,
		Leaderboard:   env.leaderboard,
	}
	env.spins = NewSpinService(db, cfg.Loyalty, clk, env.purchases, env.rewards, env.stats)
	env.cleanup = &CleanupService{
		DB:            db,
		UsersRepo:     usersRepo,
		WalletsRepo:   walletsRepo,
		PurchaseRepo:  purchaseRepo,
		RewardRepo:    rewardRepo,
		SpinLimitRepo: spinLimitRepo,
		StatsRepo:     statsRepo,
		StreakRepo:    streakRepo,
		Leaderboard:   env.leaderboard,
	}
	return env
}

// newUser 连接一个新钱包
func (e *testEnv) newUser(t *testing.T, address string) *models.User {
	t.Helper()
	u, err := e.users.CreateWithWallet(context.Background(), address)
	require.NoError(t, err)
	return u
}

func (e *testEnv) buy(t *testing.T, userID int64, amount string) *types.PurchaseResult {
	t.Helper()
	res, err := e.purchases.Create(context.Background(), userID, &types.CreatePurchaseOpt{
		Amount: decimal.RequireFromString(amount),
	})
	require.NoError(t, err)
	return res
}

const (
	addrA = "0xAbCdEf0123456789aBCDef0123456789ABCDEF01"
	addrB = "0x1111111111111111111111111111111111111111"
)

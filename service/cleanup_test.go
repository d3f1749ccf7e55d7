package service

import (
	"Giftspin/models"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanup_Reset(t *testing.T) {
	env := newTestEnv(t)
	env.spins.WithRand(fixedRand(0))
	u := env.newUser(t, addrA)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		env.buy(t, u.ID, "150")
		env.clock.AdvanceDays(1)
	}
	_, err := env.spins.Spin(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, env.mr.Exists("giftspin:leaderboard:xp"))

	res, err := env.cleanup.Reset(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.PurchasesDeleted)
	assert.EqualValues(t, 2, res.RewardsDeleted, "3-day bonus plus one spin prize")
	assert.EqualValues(t, 4, res.SpinLimitsDeleted)
	assert.Equal(t, 1, res.WalletsKept)

	purchases, err := env.purchases.List(ctx, u.ID, 50)
	require.NoError(t, err)
	assert.Empty(t, purchases)

	rewards, err := env.rewards.List(ctx, u.ID, "")
	require.NoError(t, err)
	assert.Empty(t, rewards)

	wallets, err := env.users.Wallets(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, strings.ToLower(addrA), wallets[0].Address)
	assert.True(t, wallets[0].IsPrimary)
	assert.Equal(t, models.ChainEthereum, wallets[0].Chain)

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Level)
	assert.Zero(t, stats.XP)
	assert.Zero(t, stats.SpinsWon)
	assert.Empty(t, stats.Achievements)

	streak, err := env.streaks.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, streak.Current)
	assert.Zero(t, streak.Best)
	assert.Nil(t, streak.LastPurchase)

	rank, err := env.leaderboard.Storage.Rank(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, rank)
}

func TestCleanup_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.cleanup.Reset(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, levelFor(0, 1000))
	assert.Equal(t, 1, levelFor(999, 1000))
	assert.Equal(t, 2, levelFor(1000, 1000))
	assert.Equal(t, 6, levelFor(5500, 1000))
	assert.Equal(t, 1, levelFor(-5, 1000))
	assert.Equal(t, 2, levelFor(1000, 0))
}

func TestStats_AddXPLevelsUp(t *testing.T) {
	env := newTestEnv(t)
	u := env.newUser(t, addrA)
	ctx := context.Background()

	res := env.buy(t, u.ID, "999.99")
	assert.EqualValues(t, 999, res.Stats.XP)
	assert.Equal(t, 1, res.Stats.Level)
	assert.False(t, res.LeveledUp)

	res = env.buy(t, u.ID, "1.50")
	assert.EqualValues(t, 1000, res.Stats.XP)
	assert.Equal(t, 2, res.Stats.Level)
	assert.True(t, res.LeveledUp)
	assert.Contains(t, res.Stats.Achievements, "level_2")

	stats, levelled, err := env.stats.AddXP(ctx, u.ID, 2500)
	require.NoError(t, err)
	assert.True(t, levelled)
	assert.Equal(t, 4, stats.Level)
	assert.ElementsMatch(t, []string{"level_2", "level_4"}, []string(stats.Achievements))

	score, err := env.mr.ZScore("giftspin:leaderboard:xp", itoa(u.ID))
	require.NoError(t, err)
	assert.Equal(t, 3500.0, score)
}

func TestStats_AddAchievementIdempotent(t *testing.T) {
	env := newTestEnv(t)
	u := env.newUser(t, addrA)
	ctx := context.Background()

	_, err := env.stats.AddAchievement(ctx, u.ID, "first_spin")
	require.NoError(t, err)
	stats, err := env.stats.AddAchievement(ctx, u.ID, "first_spin")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_spin"}, []string(stats.Achievements))
}

func TestStats_RecordSpinWinKeepsBest(t *testing.T) {
	env := newTestEnv(t)
	u := env.newUser(t, addrA)
	ctx := context.Background()

	require.NoError(t, env.stats.RecordSpinWin(ctx, u.ID, 20))
	require.NoError(t, env.stats.RecordSpinWin(ctx, u.ID, 5))

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.SpinsWon)
	assert.EqualValues(t, 20, stats.BestSpin)
}

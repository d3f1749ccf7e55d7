package dao

import (
	"Giftspin/internal/testkit"
	"Giftspin/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streakReward(userID int64, milestone int) *models.Reward {
	return &models.Reward{
		UserID:     userID,
		RewardType: models.RewardTypeStreak,
		Amount:     5,
		Milestone:  &milestone,
		Status:     models.RewardStatusClaimable,
		ReceivedAt: time.Now().UTC(),
	}
}

func TestReward_CreateOnce(t *testing.T) {
	db := testkit.NewDB(t)
	rewards := NewRewardDAO(db)
	ctx := context.Background()

	created, err := rewards.CreateOnce(ctx, streakReward(1, 3))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = rewards.CreateOnce(ctx, streakReward(1, 3))
	require.NoError(t, err)
	assert.False(t, created)

	created, err = rewards.CreateOnce(ctx, streakReward(2, 3))
	require.NoError(t, err)
	assert.True(t, created, "milestones are per user")

	has, err := rewards.HasMilestone(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestReward_SpinRewardsDoNotCollide(t *testing.T) {
	db := testkit.NewDB(t)
	rewards := NewRewardDAO(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, rewards.Create(ctx, &models.Reward{
			UserID:     1,
			RewardType: models.RewardTypeSpin,
			Amount:     10,
			Status:     models.RewardStatusClaimable,
			ReceivedAt: time.Now().UTC(),
		}))
	}
	items, err := rewards.ListByType(ctx, 1, models.RewardTypeSpin)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestReward_ClaimOnlyOnce(t *testing.T) {
	db := testkit.NewDB(t)
	rewards := NewRewardDAO(db)
	ctx := context.Background()

	r := streakReward(1, 5)
	_, err := rewards.CreateOnce(ctx, r)
	require.NoError(t, err)

	ok, err := rewards.Claim(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rewards.Claim(ctx, 1, r.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = rewards.Claim(ctx, 2, r.ID)
	require.NoError(t, err)
	assert.False(t, ok, "another user cannot claim it")
}

package service

import (
	"Giftspin/config"
	"Giftspin/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAdvanceStreak(t *testing.T) {
	cases := []struct {
		name        string
		in          models.Streak
		today       string
		changed     bool
		current     int
		best        int
		lastUpdated bool
	}{
		{"first purchase", models.Streak{}, "2025-03-10", true, 1, 1, true},
		{"same day", models.Streak{Current: 4, Best: 6, LastPurchase: ptr("2025-03-10")}, "2025-03-10", false, 4, 6, false},
		{"next day", models.Streak{Current: 4, Best: 4, LastPurchase: ptr("2025-03-09")}, "2025-03-10", true, 5, 5, true},
		{"next day below best", models.Streak{Current: 2, Best: 9, LastPurchase: ptr("2025-03-09")}, "2025-03-10", true, 3, 9, true},
		{"gap", models.Streak{Current: 7, Best: 7, LastPurchase: ptr("2025-03-05")}, "2025-03-10", true, 1, 7, true},
		{"month boundary", models.Streak{Current: 1, Best: 1, LastPurchase: ptr("2025-02-28")}, "2025-03-01", true, 2, 2, true},
		{"clock moved back", models.Streak{Current: 3, Best: 3, LastPurchase: ptr("2025-03-12")}, "2025-03-10", false, 3, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.in
			before := s.LastPurchase
			changed, err := advanceStreak(&s, tc.today)
			require.NoError(t, err)
			assert.Equal(t, tc.changed, changed)
			assert.Equal(t, tc.current, s.Current)
			assert.Equal(t, tc.best, s.Best)
			if tc.lastUpdated {
				require.NotNil(t, s.LastPurchase)
				assert.Equal(t, tc.today, *s.LastPurchase)
			} else {
				assert.Equal(t, before, s.LastPurchase)
			}
		})
	}
}

func TestMilestoneFor(t *testing.T) {
	ms := config.DefaultMilestones()
	_, ok := milestoneFor(ms, 2)
	assert.False(t, ok)

	for current, want := range map[int]int{3: 3, 4: 3, 6: 5, 13: 10, 29: 21, 95: 90} {
		m, ok := milestoneFor(ms, current)
		require.True(t, ok)
		assert.Equal(t, want, m.Days, "current=%d", current)
	}
}

func TestStreak_MilestonesAcrossDays(t *testing.T) {
	env := newTestEnv(t)
	u := env.newUser(t, addrA)
	ctx := context.Background()

	res := env.buy(t, u.ID, "10")
	assert.Equal(t, 1, res.Streak.Current)
	env.clock.AdvanceDays(1)
	res = env.buy(t, u.ID, "10")
	assert.Equal(t, 2, res.Streak.Current)
	assert.Nil(t, res.MilestoneReward)

	env.clock.AdvanceDays(1)
	res = env.buy(t, u.ID, "10")
	assert.Equal(t, 3, res.Streak.Current)
	require.NotNil(t, res.MilestoneReward)
	assert.Equal(t, "3-Day Streak Bonus", res.MilestoneReward.Name)
	assert.EqualValues(t, 5, res.MilestoneReward.Amount)
	assert.Equal(t, models.RewardStatusClaimable, res.MilestoneReward.Status)

	// same day: no streak change and no second bonus
	res = env.buy(t, u.ID, "10")
	assert.Equal(t, 3, res.Streak.Current)
	assert.Nil(t, res.MilestoneReward)

	env.clock.AdvanceDays(1)
	res = env.buy(t, u.ID, "10")
	assert.Equal(t, 4, res.Streak.Current)
	assert.Nil(t, res.MilestoneReward, "3-day bonus already issued")

	env.clock.AdvanceDays(1)
	res = env.buy(t, u.ID, "10")
	assert.Equal(t, 5, res.Streak.Current)
	require.NotNil(t, res.MilestoneReward)
	assert.Equal(t, "5-Day Streak Bonus", res.MilestoneReward.Name)

	env.clock.AdvanceDays(3)
	res = env.buy(t, u.ID, "10")
	assert.Equal(t, 1, res.Streak.Current)
	assert.Equal(t, 5, res.Streak.Best)

	rewards, err := env.streaks.Rewards(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 2)
}

func TestStreak_MilestoneAfterReset(t *testing.T) {
	env := newTestEnv(t)
	u := env.newUser(t, addrA)

	for i := 0; i < 3; i++ {
		env.buy(t, u.ID, "5")
		env.clock.AdvanceDays(1)
	}
	env.clock.AdvanceDays(2)
	for i := 0; i < 3; i++ {
		res := env.buy(t, u.ID, "5")
		if i == 2 {
			assert.Equal(t, 3, res.Streak.Current)
			assert.Nil(t, res.MilestoneReward, "a threshold pays out once per user")
		}
		env.clock.AdvanceDays(1)
	}
}

func TestStreak_Claim(t *testing.T) {
	env := newTestEnv(t)
	u := env.newUser(t, addrA)
	ctx := context.Background()

	reward, err := env.streaks.CheckMilestones(ctx, u.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, reward)
	require.NotNil(t, reward.Milestone)
	assert.Equal(t, 7, *reward.Milestone)

	again, err := env.streaks.CheckMilestones(ctx, u.ID, 8)
	require.NoError(t, err)
	assert.Nil(t, again)

	claimed, err := env.streaks.Claim(ctx, u.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RewardStatusClaimed, claimed.Status)

	_, err = env.streaks.Claim(ctx, u.ID, reward.ID)
	assert.ErrorIs(t, err, ErrNotClaimable)

	_, err = env.streaks.Claim(ctx, u.ID, 12345)
	assert.ErrorIs(t, err, ErrNotClaimable)
}

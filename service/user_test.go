package service

import (
	"Giftspin/models"
	"Giftspin/types"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress(" " + addrA + " ")
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(addrA), got)

	for _, bad := range []string{"", "0x123", "AbCdEf0123456789aBCDef0123456789ABCDEF0199", "0xZZCdEf0123456789aBCDef0123456789ABCDEF01"} {
		_, err := NormalizeAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func TestCreateWithWallet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u := env.newUser(t, addrA)
	assert.True(t, strings.HasPrefix(u.Username, "user_"))
	assert.Len(t, u.Username, len("user_")+7)
	assert.True(t, u.Connected)

	wallets, err := env.users.Wallets(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, strings.ToLower(addrA), wallets[0].Address)
	assert.Equal(t, models.ChainEthereum, wallets[0].Chain)
	assert.True(t, wallets[0].IsPrimary)
	assert.True(t, wallets[0].Verified)

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Level)
	assert.Zero(t, stats.XP)

	streak, err := env.streaks.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, streak.Current)
	assert.Equal(t, 1.0, streak.Multiplier)
}

func TestGetOrCreateByWallet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, isNew, err := env.users.GetOrCreateByWallet(ctx, addrA)
	require.NoError(t, err)
	assert.True(t, isNew)

	again, isNew, err := env.users.GetOrCreateByWallet(ctx, strings.ToLower(addrA))
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, u.ID, again.ID)

	missing, err := env.users.GetByWallet(ctx, addrB)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, _, err = env.users.GetOrCreateByWallet(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.newUser(t, addrA)

	name, email, fav := "spinner", "a@b.co", "steam"
	got, err := env.users.Update(ctx, u.ID, &types.UpdateUserRequest{
		Username:         &name,
		Email:            &email,
		FavoriteCategory: &fav,
	})
	require.NoError(t, err)
	assert.Equal(t, "spinner", got.Username)
	require.NotNil(t, got.Email)
	assert.Equal(t, "a@b.co", *got.Email)

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stats.FavoriteCategory)
	assert.Equal(t, "steam", *stats.FavoriteCategory)

	_, err = env.users.Update(ctx, u.ID+1, &types.UpdateUserRequest{Username: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

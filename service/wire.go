package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(LeaderboardService), "*"),
	wire.Bind(new(ILeaderboardService), new(*LeaderboardService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(RewardService), "*"),
	wire.Bind(new(IRewardService), new(*RewardService)),

	wire.Struct(new(StreakService), "*"),
	wire.Bind(new(IStreakService), new(*StreakService)),

	wire.Struct(new(PurchaseService), "*"),
	wire.Bind(new(IPurchaseService), new(*PurchaseService)),

	NewSpinService,
	wire.Bind(new(ISpinService), new(*SpinService)),

	wire.Struct(new(CleanupService), "*"),
	wire.Bind(new(ICleanupService), new(*CleanupService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),
)

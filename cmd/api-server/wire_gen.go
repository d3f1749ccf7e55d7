//go:build !wireinject
// +build !wireinject

// InitServer is kept in step with the wire.Build graph in wire.go by hand.
// Running `go run github.com/google/wire/cmd/wire` in this directory
// replaces this file with the generated equivalent.

package main

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/dao/cache"
	"Giftspin/handler"
	"Giftspin/pkg/bitrefill"
	"Giftspin/pkg/client"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/database"
	"Giftspin/pkg/server"
	"Giftspin/service"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	db := database.NewDB(cfg)
	users := dao.NewUsers(db)
	wallets := dao.NewWallets(db)
	statsDAO := dao.NewStatsDAO(db)
	streakDAO := dao.NewStreakDAO(db)
	userService := &service.UserService{
		DB:          db,
		UsersRepo:   users,
		WalletsRepo: wallets,
		StatsRepo:   statsDAO,
		StreakRepo:  streakDAO,
	}
	auth := &handler.Auth{
		Config:      cfg,
		UserService: userService,
	}
	loyalty := config.ProvideLoyaltyConfig(cfg)
	redisClient := client.NewRedisClient(cfg)
	leaderboardStorage := cache.NewLeaderboardStorage(redisClient)
	leaderboardService := &service.LeaderboardService{
		Config:    loyalty,
		Storage:   leaderboardStorage,
		StatsRepo: statsDAO,
		UsersRepo: users,
	}
	statsService := &service.StatsService{
		DB:          db,
		Config:      loyalty,
		StatsRepo:   statsDAO,
		Leaderboard: leaderboardService,
	}
	clockClock := clock.New()
	rewardDAO := dao.NewRewardDAO(db)
	rewardService := &service.RewardService{
		Config:     loyalty,
		Clock:      clockClock,
		RewardRepo: rewardDAO,
	}
	streakService := &service.StreakService{
		DB:            db,
		Config:        loyalty,
		Clock:         clockClock,
		StreakRepo:    streakDAO,
		RewardRepo:    rewardDAO,
		RewardService: rewardService,
	}
	purchaseDAO := dao.NewPurchaseDAO(db)
	spinLimitDAO := dao.NewSpinLimitDAO(db)
	purchaseService := &service.PurchaseService{
		DB:            db,
		Config:        loyalty,
		Clock:         clockClock,
		PurchaseRepo:  purchaseDAO,
		SpinLimitRepo: spinLimitDAO,
		Streaks:       streakService,
		Stats:         statsService,
		Leaderboard:   leaderboardService,
	}
	user := &handler.User{
		Config:          cfg,
		UserService:     userService,
		StatsService:    statsService,
		StreakService:   streakService,
		PurchaseService: purchaseService,
	}
	purchase := &handler.Purchase{
		Config:          cfg,
		PurchaseService: purchaseService,
	}
	spinService := service.NewSpinService(db, loyalty, clockClock, purchaseService, rewardService, statsService)
	spin := &handler.Spin{
		Config:          cfg,
		SpinService:     spinService,
		PurchaseService: purchaseService,
	}
	streak := &handler.Streak{
		Config:        cfg,
		StreakService: streakService,
	}
	reward := &handler.Reward{
		Config:        cfg,
		RewardService: rewardService,
	}
	stats := &handler.Stats{
		Config:             cfg,
		StatsService:       statsService,
		LeaderboardService: leaderboardService,
	}
	bitrefillConf := config.ProvideBitrefillConfig(cfg)
	bitrefillClient := bitrefill.NewClient(bitrefillConf)
	catalogStorage := cache.NewCatalogStorage(redisClient)
	catalogService := &service.CatalogService{
		Config: bitrefillConf,
		Client: bitrefillClient,
		Cache:  catalogStorage,
	}
	catalog := &handler.Catalog{
		CatalogService: catalogService,
	}
	cleanupService := &service.CleanupService{
		DB:            db,
		UsersRepo:     users,
		WalletsRepo:   wallets,
		PurchaseRepo:  purchaseDAO,
		RewardRepo:    rewardDAO,
		SpinLimitRepo: spinLimitDAO,
		StatsRepo:     statsDAO,
		StreakRepo:    streakDAO,
		Leaderboard:   leaderboardService,
	}
	dev := &handler.Dev{
		Config:          cfg,
		Clock:           clockClock,
		PurchaseService: purchaseService,
		CleanupService:  cleanupService,
	}
	handlers := &server.Handlers{
		Auth:     auth,
		User:     user,
		Purchase: purchase,
		Spin:     spin,
		Streak:   streak,
		Reward:   reward,
		Stats:    stats,
		Catalog:  catalog,
		Dev:      dev,
	}
	engine := server.NewGinEngine(cfg, handlers)
	appProvider := &server.AppProvider{
		Config: cfg,
		Engine: engine,
	}
	return appProvider
}

//go:build wireinject
// +build wireinject

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

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		config.ProvideLoyaltyConfig,
		config.ProvideBitrefillConfig,
		client.NewRedisClient,
		database.NewDB,
		clock.New,
		bitrefill.NewClient,
		server.NewGinEngine,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Purchase), "*"),
		wire.Struct(new(handler.Spin), "*"),
		wire.Struct(new(handler.Streak), "*"),
		wire.Struct(new(handler.Reward), "*"),
		wire.Struct(new(handler.Stats), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Dev), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

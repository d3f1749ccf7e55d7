package client

import (
	"Giftspin/config"
	"Giftspin/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to redis. Redis only backs the leaderboard and the
// catalog cache, so a failed ping is logged rather than fatal.
func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Redis.Addr(),
		Password:     conf.Redis.Password,
		Username:     conf.Redis.Username,
		DB:           conf.Redis.Database,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Warn("connect redis error, leaderboard and catalog cache degraded", zap.Error(err))
		return client
	}
	log.L.Info("redis client success")
	return client
}

package cache

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "giftspin:leaderboard:xp"

type LeaderboardEntry struct {
	UserID int64
	XP     int64
}

// LeaderboardStorage 经验值排行榜, a sorted set scored by XP.
type LeaderboardStorage struct {
	redis *redis.Client
}

func NewLeaderboardStorage(rds *redis.Client) *LeaderboardStorage {
	return &LeaderboardStorage{redis: rds}
}

func (l *LeaderboardStorage) Set(ctx context.Context, userID int64, xp int64) error {
	return l.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(xp),
		Member: strconv.FormatInt(userID, 10),
	}).Err()
}

func (l *LeaderboardStorage) Remove(ctx context.Context, userID int64) error {
	return l.redis.ZRem(ctx, leaderboardKey, strconv.FormatInt(userID, 10)).Err()
}

func (l *LeaderboardStorage) Top(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	items, err := l.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(items))
	for _, z := range items {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		uid, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{UserID: uid, XP: int64(z.Score)})
	}
	return entries, nil
}

// Rank 1-based rank, 0 when the user is not on the board.
func (l *LeaderboardStorage) Rank(ctx context.Context, userID int64) (int64, error) {
	rank, err := l.redis.ZRevRank(ctx, leaderboardKey, strconv.FormatInt(userID, 10)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}

func (l *LeaderboardStorage) Size(ctx context.Context) (int64, error) {
	return l.redis.ZCard(ctx, leaderboardKey).Result()
}

// Rebuild 用给定条目整体替换排行榜
func (l *LeaderboardStorage) Rebuild(ctx context.Context, entries []LeaderboardEntry) error {
	members := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, redis.Z{
			Score:  float64(e.XP),
			Member: strconv.FormatInt(e.UserID, 10),
		})
	}
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, leaderboardKey)
		if len(members) > 0 {
			pipe.ZAdd(ctx, leaderboardKey, members...)
		}
		return nil
	})
	return err
}

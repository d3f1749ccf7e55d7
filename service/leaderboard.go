package service

import (
	"Giftspin/config"
	"Giftspin/dao"
	"Giftspin/dao/cache"
	"Giftspin/pkg/log"
	"Giftspin/types"
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

var _ ILeaderboardService = (*LeaderboardService)(nil)

type ILeaderboardService interface {
	Sync(ctx context.Context, userID int64, xp int64)
	Remove(ctx context.Context, userID int64)
	Top(ctx context.Context, userID int64, limit int) (*types.LeaderboardResponse, error)
	Rank(ctx context.Context, userID int64) (int64, error)
}

// LeaderboardService 经验值排行榜. Redis is the fast path, the stats table
// is the source of truth and the fallback.
type LeaderboardService struct {
	Config    *config.Loyalty
	Storage   *cache.LeaderboardStorage
	StatsRepo *dao.StatsDAO
	UsersRepo *dao.Users
}

// Sync 写入失败只记录日志. Only users with xp > 0 are on the board.
func (s *LeaderboardService) Sync(ctx context.Context, userID int64, xp int64) {
	if xp <= 0 {
		s.Remove(ctx, userID)
		return
	}
	if err := s.Storage.Set(ctx, userID, xp); err != nil {
		log.L.Warn("leaderboard sync failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *LeaderboardService) Remove(ctx context.Context, userID int64) {
	if err := s.Storage.Remove(ctx, userID); err != nil {
		log.L.Warn("leaderboard remove failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (s *LeaderboardService) Top(ctx context.Context, userID int64, limit int) (*types.LeaderboardResponse, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	limit = min(limit, maxLeaderboardLimit)

	resp := &types.LeaderboardResponse{Source: "redis"}
	var entries []cache.LeaderboardEntry
	err := s.reconcile(ctx)
	if err == nil {
		entries, err = s.Storage.Top(ctx, limit)
	}
	if err != nil || len(entries) == 0 {
		if err != nil {
			log.L.Warn("leaderboard redis unavailable, falling back to db", zap.Error(err))
		}
		rows, err := s.StatsRepo.TopByXP(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("leaderboard from db: %w", err)
		}
		resp.Source = "db"
		entries = make([]cache.LeaderboardEntry, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, cache.LeaderboardEntry{UserID: r.UserID, XP: r.XP})
		}
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	names, err := s.UsersRepo.Usernames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load usernames: %w", err)
	}

	resp.Items = make([]types.LeaderboardEntry, 0, len(entries))
	for i, e := range entries {
		resp.Items = append(resp.Items, types.LeaderboardEntry{
			Rank:     int64(i + 1),
			UserID:   e.UserID,
			Username: names[e.UserID],
			XP:       e.XP,
			Level:    levelFor(e.XP, s.Config.XpPerLevel),
		})
	}

	if userID > 0 {
		resp.MyRank, err = s.rank(ctx, userID, resp.Source == "redis")
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// reconcile 有序集合与 stats 表人数不一致时 (flush, eviction) 从数据库重建.
func (s *LeaderboardService) reconcile(ctx context.Context) error {
	size, err := s.Storage.Size(ctx)
	if err != nil {
		return err
	}
	count, err := s.StatsRepo.CountRanked(ctx)
	if err != nil {
		return fmt.Errorf("count ranked stats: %w", err)
	}
	if size == count {
		return nil
	}

	rows, err := s.StatsRepo.Ranked(ctx)
	if err != nil {
		return fmt.Errorf("load ranked stats: %w", err)
	}
	entries := make([]cache.LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, cache.LeaderboardEntry{UserID: r.UserID, XP: r.XP})
	}
	log.L.Warn("leaderboard out of sync, rebuilding",
		zap.Int64("redis", size),
		zap.Int64("db", count),
	)
	return s.Storage.Rebuild(ctx, entries)
}

// Rank 1-based, 0 when the user has no stats.
func (s *LeaderboardService) Rank(ctx context.Context, userID int64) (int64, error) {
	return s.rank(ctx, userID, s.reconcile(ctx) == nil)
}

func (s *LeaderboardService) rank(ctx context.Context, userID int64, useRedis bool) (int64, error) {
	if !useRedis {
		return s.rankFromDB(ctx, userID)
	}
	rank, err := s.Storage.Rank(ctx, userID)
	if err == nil && rank > 0 {
		return rank, nil
	}
	if err != nil {
		log.L.Warn("leaderboard rank from redis failed", zap.Int64("user_id", userID), zap.Error(err))
	}
	return s.rankFromDB(ctx, userID)
}

func (s *LeaderboardService) rankFromDB(ctx context.Context, userID int64) (int64, error) {
	stats, err := s.StatsRepo.GetByUserID(ctx, userID)
	if dao.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load stats: %w", err)
	}
	above, err := s.StatsRepo.CountAbove(ctx, stats.XP)
	if err != nil {
		return 0, fmt.Errorf("count ranks: %w", err)
	}
	return above + 1, nil
}

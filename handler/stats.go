package handler

import (
	"Giftspin/config"
	"Giftspin/middleware"
	"Giftspin/pkg/context"
	"Giftspin/pkg/response"
	"Giftspin/service"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	Config             *config.Config
	StatsService       service.IStatsService
	LeaderboardService service.ILeaderboardService
}

func (s *Stats) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(s.Config.Jwt.Secret), s.Config.Jwt.Expire())
	r.GET("/v1/stats", authorize, context.Wrap(s.Get))
	r.GET("/v1/leaderboard", authorize, context.Wrap(s.Leaderboard))
}

func (s *Stats) Get(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := s.StatsService.Get(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}

// Leaderboard ?limit=
func (s *Stats) Leaderboard(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	resp, err := s.LeaderboardService.Top(c.Request.Context(), userID, queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

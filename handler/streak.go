package handler

import (
	"Giftspin/config"
	"Giftspin/middleware"
	"Giftspin/pkg/context"
	"Giftspin/pkg/response"
	"Giftspin/service"
	"Giftspin/types"

	"github.com/gin-gonic/gin"
)

type Streak struct {
	Config        *config.Config
	StreakService service.IStreakService
}

func (s *Streak) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/streak")
	g.Use(middleware.Auth([]byte(s.Config.Jwt.Secret), s.Config.Jwt.Expire()))
	g.GET("", context.Wrap(s.Get))
	g.GET("/rewards", context.Wrap(s.Rewards))
	g.POST("/rewards/:id/claim", context.Wrap(s.Claim))
}

func (s *Streak) Get(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	streak, err := s.StreakService.Get(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, streak)
	return nil
}

func (s *Streak) Rewards(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := s.StreakService.Rewards(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, &types.ListRewardsResponse{Items: items})
	return nil
}

func (s *Streak) Claim(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	reward, err := s.StreakService.Claim(c.Request.Context(), userID, rewardID)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, reward)
	return nil
}

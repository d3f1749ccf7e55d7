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

type Reward struct {
	Config        *config.Config
	RewardService service.IRewardService
}

func (h *Reward) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/rewards")
	g.Use(middleware.Auth([]byte(h.Config.Jwt.Secret), h.Config.Jwt.Expire()))
	g.GET("", context.Wrap(h.List))
	g.POST("/:id/use", context.Wrap(h.Use))
}

// List ?status=claimable|claimed|used
func (h *Reward) List(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.RewardService.List(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, &types.ListRewardsResponse{Items: items})
	return nil
}

func (h *Reward) Use(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rewardID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	reward, err := h.RewardService.Use(c.Request.Context(), userID, rewardID)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, reward)
	return nil
}

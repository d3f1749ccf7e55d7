package handler

import (
	"Giftspin/config"
	"Giftspin/middleware"
	"Giftspin/pkg/context"
	"Giftspin/pkg/response"
	"Giftspin/service"
	"Giftspin/types"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type User struct {
	Config          *config.Config
	UserService     service.IUserService
	StatsService    service.IStatsService
	StreakService   service.IStreakService
	PurchaseService service.IPurchaseService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/me")
	g.Use(middleware.Auth([]byte(u.Config.Jwt.Secret), u.Config.Jwt.Expire()))
	g.GET("", context.Wrap(u.Me))
	g.PATCH("", context.Wrap(u.Update))
	g.GET("/wallets", context.Wrap(u.Wallets))
}

// Me 聚合用户资料、统计、连胜和当日转盘额度
func (u *User) Me(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request.Context()

	user, err := u.UserService.GetByID(ctx, userID)
	if err != nil {
		return toBizError(err)
	}

	resp := &types.MeResponse{User: user}
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		resp.Stats, err = u.StatsService.Get(gctx, userID)
		return err
	})
	eg.Go(func() error {
		var err error
		resp.Streak, err = u.StreakService.Get(gctx, userID)
		return err
	})
	eg.Go(func() error {
		limit, err := u.PurchaseService.TodaySpinLimit(gctx, userID)
		resp.SpinLimit = types.NewSpinLimitView(limit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return toBizError(err)
	}

	response.Success(c, resp)
	return nil
}

func (u *User) Update(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err.Error())
	}

	user, err := u.UserService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, user)
	return nil
}

func (u *User) Wallets(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	wallets, err := u.UserService.Wallets(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, wallets)
	return nil
}

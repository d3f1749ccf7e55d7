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

type Spin struct {
	Config          *config.Config
	SpinService     service.ISpinService
	PurchaseService service.IPurchaseService
}

func (s *Spin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/spins")
	g.GET("/wheel", context.Wrap(s.Wheel))

	authorized := g.Group("")
	authorized.Use(middleware.Auth([]byte(s.Config.Jwt.Secret), s.Config.Jwt.Expire()))
	authorized.GET("/today", context.Wrap(s.Today))
	authorized.POST("", context.Wrap(s.Spin))
}

func (s *Spin) Wheel(c *gin.Context) error {
	response.Success(c, s.SpinService.Wheel())
	return nil
}

func (s *Spin) Today(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	limit, err := s.PurchaseService.TodaySpinLimit(c.Request.Context(), userID)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, types.NewSpinLimitView(limit))
	return nil
}

func (s *Spin) Spin(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := s.SpinService.Spin(c.Request.Context(), userID)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, result)
	return nil
}

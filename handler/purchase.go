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

type Purchase struct {
	Config          *config.Config
	PurchaseService service.IPurchaseService
}

func (p *Purchase) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/purchases")
	g.Use(middleware.Auth([]byte(p.Config.Jwt.Secret), p.Config.Jwt.Expire()))
	g.POST("", context.Wrap(p.Create))
	g.GET("", context.Wrap(p.List))
}

func (p *Purchase) Create(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err.Error())
	}

	result, err := p.PurchaseService.Create(c.Request.Context(), userID, &types.CreatePurchaseOpt{
		Amount:   req.Amount,
		Currency: req.Currency,
		Name:     req.Name,
		Category: req.Category,
		OrderID:  req.OrderID,
	})
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, result)
	return nil
}

func (p *Purchase) List(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := p.PurchaseService.List(c.Request.Context(), userID, queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	response.Success(c, &types.ListPurchasesResponse{Items: items})
	return nil
}

package handler

import (
	"Giftspin/config"
	"Giftspin/middleware"
	"Giftspin/pkg/clock"
	"Giftspin/pkg/context"
	"Giftspin/pkg/log"
	"Giftspin/pkg/response"
	"Giftspin/service"
	"Giftspin/types"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dev 调试工具, only mounted when app.debug is on.
type Dev struct {
	Config          *config.Config
	Clock           *clock.Clock
	PurchaseService service.IPurchaseService
	CleanupService  service.ICleanupService
}

func (d *Dev) RegisterRouter(r gin.IRouter) {
	if !d.Config.Debug() {
		return
	}
	g := r.Group("/v1/dev")
	g.Use(middleware.Auth([]byte(d.Config.Jwt.Secret), d.Config.Jwt.Expire()))
	g.POST("/time-travel", context.Wrap(d.TimeTravel))
	g.DELETE("/time-travel", context.Wrap(d.ResetTime))
	g.POST("/purchase", context.Wrap(d.Purchase))
	g.POST("/reset", context.Wrap(d.Reset))
}

func (d *Dev) clockState() *types.TimeTravelResponse {
	return &types.TimeTravelResponse{
		OffsetSeconds: int64(d.Clock.Offset() / time.Second),
		Now:           d.Clock.Now().Format(time.RFC3339),
		Today:         d.Clock.Today(),
	}
}

func (d *Dev) TimeTravel(c *gin.Context) error {
	var req types.TimeTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err.Error())
	}
	offset := d.Clock.AdvanceDays(req.Days)
	log.L.Warn("clock advanced", zap.Int("days", req.Days), zap.Duration("offset", offset))

	response.Success(c, d.clockState())
	return nil
}

func (d *Dev) ResetTime(c *gin.Context) error {
	d.Clock.Reset()
	response.Success(c, d.clockState())
	return nil
}

func (d *Dev) Purchase(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.DevPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest(err.Error())
	}

	result, err := d.PurchaseService.Create(c.Request.Context(), userID, &types.CreatePurchaseOpt{
		Amount:   req.Amount,
		Currency: "USD",
		Name:     "Simulated purchase",
		Category: req.Category,
	})
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, result)
	return nil
}

func (d *Dev) Reset(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := d.CleanupService.Reset(c.Request.Context(), userID)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, result)
	return nil
}

package handler

import (
	"Giftspin/config"
	"Giftspin/pkg/context"
	"Giftspin/pkg/jwt"
	"Giftspin/pkg/response"
	"Giftspin/service"
	"Giftspin/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/wallet", context.Wrap(a.WalletLogin))
}

// WalletLogin 钱包连接即登录, creating the account on first connect.
func (a *Auth) WalletLogin(c *gin.Context) error {
	var req types.WalletLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return badRequest("address is required")
	}

	user, isNew, err := a.UserService.GetOrCreateByWallet(c.Request.Context(), req.Address)
	if err != nil {
		return toBizError(err)
	}
	address, _ := service.NormalizeAddress(req.Address)

	token, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), user.ID, address, jwt.TypeAccess, a.Config.Jwt.Expire())
	if err != nil {
		return err
	}

	response.Success(c, &types.WalletLoginResponse{
		AccessToken: token,
		ExpiresIn:   int(a.Config.Jwt.ExpiresIn),
		IsNew:       isNew,
		User:        user,
	})
	return nil
}

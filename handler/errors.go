package handler

import (
	"Giftspin/pkg/context"
	"Giftspin/pkg/response"
	"Giftspin/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 业务错误码
const (
	CodeBadRequest           = 40000
	CodeNoSpinsLeft          = 40001
	CodeNotClaimable         = 40002
	CodeDuplicateOrder       = 40003
	CodeInvalidAmount        = 40004
	CodeInvalidStatus        = 40005
	CodeInvalidAddress       = 40006
	CodeUserNotFound         = 40400
	CodeRewardNotFound       = 40401
	CodeCatalogNotConfigured = 50301
)

var bizErrors = []struct {
	err  error
	code int
}{
	{service.ErrNoSpinsLeft, CodeNoSpinsLeft},
	{service.ErrNotClaimable, CodeNotClaimable},
	{service.ErrDuplicateOrder, CodeDuplicateOrder},
	{service.ErrInvalidAmount, CodeInvalidAmount},
	{service.ErrInvalidStatus, CodeInvalidStatus},
	{service.ErrInvalidAddress, CodeInvalidAddress},
	{service.ErrUserNotFound, CodeUserNotFound},
	{service.ErrRewardNotFound, CodeRewardNotFound},
	{service.ErrCatalogNotConfigured, CodeCatalogNotConfigured},
}

// toBizError 将 service 层的哨兵错误转换为业务错误, other errors pass through
// and end up as a 500.
func toBizError(err error) error {
	for _, be := range bizErrors {
		if errors.Is(err, be.err) {
			return response.NewError(be.code, be.err.Error())
		}
	}
	return err
}

func badRequest(msg string) error {
	return response.NewError(CodeBadRequest, msg)
}

func currentUser(c *gin.Context) (int64, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0, response.NewError(http.StatusUnauthorized, "unauthorized")
	}
	return uid, nil
}

func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid " + name)
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

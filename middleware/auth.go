package middleware

import (
	"net/http"
	"strings"
	"time"

	"Giftspin/pkg/context"
	"Giftspin/pkg/jwt"
	"Giftspin/pkg/response"

	"github.com/gin-gonic/gin"
)

// refreshWindow 过期前这段时间内的请求会收到新 token
const refreshWindow = 5 * time.Minute

func Auth(secret []byte, expire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < refreshWindow {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Address, jwt.TypeAccess, expire)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxAddress, claims.Address)

		c.Next()
	}
}

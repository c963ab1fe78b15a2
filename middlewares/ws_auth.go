package middlewares

import (
	"hospitality/pkg/resp"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware reads the token from the "token" query parameter first,
// then from the Authorization header.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			tokenStr = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			return
		}
		utils.SetClaims(c, claims)

		c.Next()
	}
}

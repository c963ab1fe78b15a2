package middlewares

import (
	"slices"
	"strings"

	"hospitality/pkg/resp"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid admin token and, when
// roles are given, tokens whose role is not among them.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			resp.Unauthorized(c, "Access denied. No token provided.")
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "Invalid or expired token")
			return
		}
		utils.SetClaims(c, claims)

		if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, claims.Role) {
			resp.Forbidden(c, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func bearerToken(h string) string {
	tokenStr, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(tokenStr)
}

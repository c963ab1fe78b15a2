package utils

import "github.com/gin-gonic/gin"

const (
	adminIDKey = "adminId"
	claimsKey  = "claims"
)

// SetClaims stores the verified token claims on the request.
func SetClaims(c *gin.Context, claims *Claims) {
	c.Set(adminIDKey, claims.Subject)
	c.Set(claimsKey, claims)
}

func CurrentAdminID(c *gin.Context) string {
	return c.GetString(adminIDKey)
}

func CurrentClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}

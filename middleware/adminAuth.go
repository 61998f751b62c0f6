package middleware

import (
	"net/http"
	"strings"

	"goldenfish/config"
	"goldenfish/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the dashboard endpoints. Tokens are issued by
// the admin login handler and carry the admin username as subject.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || sub != config.AppConfig.AdminUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminUser", sub)
		c.Next()
	}
}

package middleware

import (
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/NithishMee/blood/internal/utils"
)

var warnOnce sync.Once

// AdminOnly guards the admin verification endpoints. When JWT_SECRET is
// configured it requires a Bearer token with the admin role. When it is not,
// the guard lets everything through so the service stays drop-in compatible
// with deployments that never provisioned admin accounts, but it says so
// loudly in the log.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.JWTConfigured() {
			warnOnce.Do(func() {
				log.Println("WARNING: JWT_SECRET is not set; admin endpoints are open to any caller")
			})
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"courtside/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminRequired validates the bearer token and loads the admin identity into
// the request context. Admin identity lives in the token claims only; no
// handler re-derives it from anywhere else. WebSocket upgrades may carry the
// token as a query parameter since browsers cannot set headers there.
func AdminRequired(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrUnauthorized})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secretKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": utils.ErrInvalidToken})
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Set("admin_name", claims.Name)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

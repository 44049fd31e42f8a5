package middleware

import (
	"net/http"
	"strings"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/auth"
	"ats-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session JWT from the Authorization header or
// the auth_token cookie and stores the account identity on the context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			requestID, _ := c.Get("RequestID")
			idStr, _ := requestID.(string)
			security.LogAuthEvent(security.EventInvalidToken, "", c.ClientIP(), idStr)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUsername), claims.Username)
		c.Set(string(domain.KeyUserRole), claims.Role)
		c.Next()
	}
}

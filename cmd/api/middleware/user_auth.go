package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"hooklabe/cmd/api/auth"
	"hooklabe/cmd/api/services"
)

// UserAuthMiddleware validates the bearer JWT and stores the user id, email
// and role in the gin context.
func UserAuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		userID, email, role, err := authSvc.ParseAccessToken(token)
		if err != nil {
			log.Printf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Set("email", email)
		c.Set("role", role)

		c.Next()
	}
}

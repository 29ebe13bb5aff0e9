package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub-backend/models"
	"stayhub-backend/repositories"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

const currentUserKey = "currentUser"

// RequireAuth validates the Bearer token and loads the account it names.
// The request is rejected when the token is missing, invalid, expired,
// or belongs to a deactivated or deleted account.
func RequireAuth(tokens services.TokenIssuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		user, err := repositories.NewUserRepository(db).GetByID(claims.UserID)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "account no longer exists")
			c.Abort()
			return
		}
		if !user.IsActive {
			utils.JSONError(c, http.StatusUnauthorized, "account is deactivated")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the account stored by RequireAuth. Safe only on
// routes behind that middleware.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(currentUserKey).(models.User)
}

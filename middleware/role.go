package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/utils"
)

// RequireRoles allows the request through only when the authenticated
// account holds one of the given roles. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

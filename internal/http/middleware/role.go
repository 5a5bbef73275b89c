package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/requestdata"
)

// RequireRole gates a route group to one workflow. The role comes from
// the access token, so it reflects the account's role at login time.
// Accounts whose role matches neither workflow are denied everywhere.
func RequireRole(role types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil || rd.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "this account does not have " + role.String() + " privileges", "code": "unauthorized_role"},
			})
			return
		}
		c.Next()
	}
}

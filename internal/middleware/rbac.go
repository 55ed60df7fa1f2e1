package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/models"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

// IndexPath is where denied requests are pointed.
const IndexPath = "/"

// Allowed is the capability predicate behind RequireRoles: membership of the
// session role in the permitted set.
func Allowed(role models.Role, permitted ...models.Role) bool {
	for _, p := range permitted {
		if role == p {
			return true
		}
	}
	return false
}

// RequireRoles restricts a route to the given roles. The check runs before
// the handler; a denied request never reaches it and no mutation occurs.
func RequireRoles(permitted ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.ErrorWithMeta(c, appErrors.ErrUnauthorized, map[string]interface{}{"redirect": LoginPath})
			c.Abort()
			return
		}
		claims := claimsValue.(*models.SessionClaims)

		if !Allowed(claims.Role, permitted...) {
			response.ErrorWithMeta(c, appErrors.ErrForbidden, map[string]interface{}{"redirect": IndexPath})
			c.Abort()
			return
		}

		c.Next()
	}
}

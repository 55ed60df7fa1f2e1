package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/school-erp/school-erp-api/internal/models"
	"github.com/school-erp/school-erp-api/internal/service"
	appErrors "github.com/school-erp/school-erp-api/pkg/errors"
	"github.com/school-erp/school-erp-api/pkg/response"
)

// ContextUserKey is the gin context key storing the session claims.
const ContextUserKey = "currentUser"

// LoginPath is where unauthenticated requests are pointed.
const LoginPath = "/login"

// publicPaths are reachable without a session, matching the original
// landing/login/signup/diagnostics surface.
var publicPaths = map[string]struct{}{
	"/":         {},
	"/home":     {},
	"/teams":    {},
	"/contact":  {},
	"/about":    {},
	"/login":    {},
	"/signup":   {},
	"/db-check": {},
	"/health":   {},
	"/metrics":  {},
}

var publicPrefixes = []string{"/static/", "/docs/"}

// IsPublic reports whether the path is on the unauthenticated allow-list.
func IsPublic(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionGate requires a valid session token on every route outside the
// public allow-list. Unresolved routes pass through so the router can 404
// them. When a token is present and valid (on any route), the claims are
// stored in the context for downstream handlers.
func SessionGate(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, tokenErr := parseBearer(c, auth)
		if claims != nil {
			c.Set(ContextUserKey, claims)
		}

		if IsPublic(c.Request.URL.Path) || c.FullPath() == "" {
			c.Next()
			return
		}

		if claims == nil {
			err := tokenErr
			if err == nil {
				err = appErrors.ErrUnauthorized
			}
			response.ErrorWithMeta(c, err, map[string]interface{}{"redirect": LoginPath})
			c.Abort()
			return
		}

		c.Next()
	}
}

func parseBearer(c *gin.Context, auth *service.AuthService) (*models.SessionClaims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}
	return claims, nil
}

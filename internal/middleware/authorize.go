package middleware

import (
	"net/http"

	"github.com/casbin/casbin"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RoleAnonymous is the casbin subject for requests without a token.
const RoleAnonymous = "anonymous"

func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcerSafe(modelPath, policyPath)
}

// Authorize checks the caller's role against the route policy. Denied
// anonymous callers get 401, denied authenticated callers get 403.
// Requests that match no route are left for the router to answer 404.
func Authorize(e *casbin.Enforcer, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.FullPath() == "" {
			c.Next()
			return
		}

		role := RoleAnonymous
		actor, authenticated := ActorFrom(c)
		if authenticated {
			role = string(actor.Role)
		}

		allowed, err := e.EnforceSafe(role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			log.Error("enforce policy",
				logger.String("role", role),
				logger.String("path", c.Request.URL.Path),
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		if !allowed {
			c.Set("error", "access denied for role "+role)
			if !authenticated {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthenticated"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}

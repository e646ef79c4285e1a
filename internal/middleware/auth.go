package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/StageBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type tokenParser interface {
	Parse(token string) (domain.Actor, error)
}

// Authenticate resolves the bearer token into an actor. Requests without a
// token pass through anonymously; Authorize decides whether that is enough.
func Authenticate(tokens tokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.Set("error", "malformed authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthenticated"})
			return
		}

		actor, err := tokens.Parse(raw)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthenticated"})
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

func SetActor(c *ginext.Context, actor domain.Actor) {
	c.Set(actorKey, actor)
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

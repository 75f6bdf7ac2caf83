package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	HeaderUserID = "X-User-ID"
	actorKey     = "actor_id"
)

// Actor resolves the calling user from X-User-ID and stores it in canonical
// lowercase form. The id is trusted as is; requests without a valid one are
// rejected with 401.
func Actor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderUserID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or invalid " + HeaderUserID + " header"},
			)
			return
		}

		c.Set(actorKey, id.String())
		c.Next()
	}
}

// ActorID returns the user resolved by Actor, or "" on public routes.
func ActorID(c *ginext.Context) string {
	return c.GetString(actorKey)
}

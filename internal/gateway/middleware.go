package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collective-ledger/internal/server/interceptors"
)

const actorKey = "actor"

// identify resolves the caller from Authorization or X-Actor and stores it on the request
// context. The client IP is always recorded so audit entries carry it. Anonymous requests
// pass through; a presented but invalid credential is rejected.
func (g *Gateway) identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := interceptors.WithClientIP(c.Request.Context(), c.ClientIP())
		authz := c.GetHeader("Authorization")
		header := c.GetHeader(interceptors.ActorHeader)
		if authz != "" || header != "" {
			actor, err := g.deps.Auth.Authenticate(authz, header)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: err.Error(), Kind: kindUnauthenticated})
				return
			}
			ctx = interceptors.WithActor(ctx, actor)
			c.Set(actorKey, actor)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requireActor rejects requests that identify did not authenticate.
func (g *Gateway) requireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(actorKey) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{Error: interceptors.ErrUnauthenticated.Error(), Kind: kindUnauthenticated})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/sunziping2016/YAWeChatTicket/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// Auth validates a Bearer token and stashes the resolved identity; it
// aborts when the credential is missing or invalid. Public routes
// simply omit the middleware.
func Auth(verifier *auth.Verifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required", "kind": "unauthorized"},
			)
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication failed", "kind": "unauthorized"},
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c *ginext.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

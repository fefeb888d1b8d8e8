package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID      = "X-User-Id"
	HeaderWorkspaceID = "X-Workspace-Id"

	identityKey = "identity"

	fallbackUserID      = "demo-user"
	fallbackWorkspaceID = "demo-workspace"
)

// Identity is the caller as resolved from request headers. There is no
// authentication; the headers are trusted.
type Identity struct {
	UserID      string
	WorkspaceID string
}

// IdentityMiddleware resolves the caller from headers, then the configured
// defaults, then the demo ids.
func IdentityMiddleware(defaultUserID, defaultWorkspaceID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, Identity{
			UserID:      firstNonBlank(c.GetHeader(HeaderUserID), defaultUserID, fallbackUserID),
			WorkspaceID: firstNonBlank(c.GetHeader(HeaderWorkspaceID), defaultWorkspaceID, fallbackWorkspaceID),
		})
		c.Next()
	}
}

// IdentityFrom returns the identity set by IdentityMiddleware, or the demo
// identity when the middleware did not run.
func IdentityFrom(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{UserID: fallbackUserID, WorkspaceID: fallbackWorkspaceID}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

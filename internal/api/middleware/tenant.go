package middleware

import (
	"net/http"
	"strings"

	apperrors "project-tracker-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the organization slug that scopes every API request
const TenantHeader = "X-Organization-Slug"

// exemptPrefixes lists path prefixes that never require a tenant:
// operational endpoints, API documentation and the realtime socket.
var exemptPrefixes = []string{
	"/health",
	"/swagger",
	"/admin",
	"/ws",
}

// TenantRequired rejects requests that do not identify a tenant. On
// exempt paths the header is still read when present so downstream
// handlers and logs can use it, but it is never required there.
func TenantRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader(TenantHeader)

		if isExempt(c.Request.URL.Path) {
			if slug != "" {
				c.Set("organization_slug", slug)
			}
			c.Next()
			return
		}

		if slug == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": apperrors.ErrMissingTenantHeader.Error(),
			})
			return
		}

		c.Set("organization_slug", slug)
		c.Next()
	}
}

func isExempt(path string) bool {
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// TenantSlug returns the tenant slug bound to the request, or "" when
// the request reached an exempt path without one
func TenantSlug(c *gin.Context) string {
	slug, _ := c.Get("organization_slug")
	s, _ := slug.(string)
	return s
}

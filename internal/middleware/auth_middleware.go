package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/models"
)

// IdentityKey is the gin context key under which the authenticated
// models.UserIdentity is stored by the auth middleware.
const IdentityKey = "identity"

// ErrorResponse mirrors the API error shape locally to avoid an import cycle
// with internal/api.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides gin middleware that resolves bearer tokens through
// the identity gate. Every call re-validates the token against the identity
// provider; nothing is cached, since tokens may be revoked between requests.
type AuthMiddleware struct {
	authService core.AuthService
}

// NewAuthMiddleware creates an AuthMiddleware instance.
func NewAuthMiddleware(authService core.AuthService) *AuthMiddleware {
	if authService == nil {
		panic("AuthService is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{authService: authService}
}

// RequireAuth aborts with 401 unless the request carries a valid bearer token.
// On success the resolved identity is stored under IdentityKey.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization token required"})
			return
		}

		identity, err := m.authService.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set(IdentityKey, *identity)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when present but never aborts:
// anonymous and invalid-token requests proceed without an identity, which
// business rules (the plan default) treat as "anonymous".
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if identity, err := m.authService.Verify(c.Request.Context(), token); err == nil {
				c.Set(IdentityKey, *identity)
			}
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by the auth middleware, if any.
func IdentityFromContext(c *gin.Context) (models.UserIdentity, bool) {
	raw, exists := c.Get(IdentityKey)
	if !exists {
		return models.UserIdentity{}, false
	}
	identity, ok := raw.(models.UserIdentity)
	return identity, ok
}

// bearerToken extracts the token segment of an "Authorization: Bearer <token>"
// header. Reports false when the header is absent, malformed, or empty.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

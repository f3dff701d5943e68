package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/middleware"
	"purenote-backend-go/internal/models"
)

// AuthHandler handles the signin/signup pass-throughs and the profile lookup.
type AuthHandler struct {
	authService core.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(as core.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignInResponse{
		Success:     true,
		AccessToken: session.AccessToken,
		User:        session.User,
	})
}

// SignUp handles POST /signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignUpResponse{Success: true, User: *user})
}

// Profile handles GET /profile. The identity is resolved by the auth
// middleware; reaching this handler without one is a wiring bug.
func (h *AuthHandler) Profile(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondError(c, fmt.Errorf("%w: identity missing from context", core.ErrUnauthenticated))
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{User: identity})
}

package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/middleware"
	"purenote-backend-go/internal/models"
)

// PlanHandler handles the user-plan endpoints.
type PlanHandler struct {
	planService core.PlanService
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(ps core.PlanService) *PlanHandler {
	return &PlanHandler{planService: ps}
}

// Get handles GET /user-plan. Auth is optional: anonymous or invalid-token
// callers get the free tier.
func (h *PlanHandler) Get(c *gin.Context) {
	var identityPtr *models.UserIdentity
	if identity, ok := middleware.IdentityFromContext(c); ok {
		identityPtr = &identity
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), identityPtr)
	if err != nil {
		// GetPlan defaults on every failure path, but keep the mapping for safety.
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanResponse{Plan: plan})
}

// Update handles POST /update-plan (auth required).
func (h *PlanHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondError(c, fmt.Errorf("%w: identity missing from context", core.ErrUnauthenticated))
		return
	}

	var req models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), identity, req.Plan)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdatePlanResponse{Success: true, Plan: plan})
}

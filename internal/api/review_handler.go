package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/middleware"
	"purenote-backend-go/internal/models"
)

// ReviewHandler handles the review endpoints.
type ReviewHandler struct {
	reviewService core.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(rs core.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: rs}
}

// List handles GET /reviews. Public; returns all reviews newest-first.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	c.JSON(http.StatusOK, ReviewListResponse{Reviews: reviews})
}

// Create handles POST /reviews (auth required).
func (h *ReviewHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondError(c, fmt.Errorf("%w: identity missing from context", core.ErrUnauthenticated))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), identity, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateReviewResponse{Success: true, Review: review})
}

// Delete handles DELETE /reviews/:id (auth required, author only).
func (h *ReviewHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		respondError(c, fmt.Errorf("%w: identity missing from context", core.ErrUnauthenticated))
		return
	}

	reviewID := c.Param("id")
	if err := h.reviewService.DeleteReview(c.Request.Context(), identity, reviewID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

package api

import "purenote-backend-go/internal/models"

// ErrorResponse is the uniform error shape for every failing response.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message
	Details string `json:"details,omitempty"` // Diagnostic detail, suppressed in release mode
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status            string `json:"status"`
	PaymentConfigured bool   `json:"paymentConfigured"`
	Timestamp         string `json:"timestamp"`
}

// SignInResponse is the body of a successful POST /signin.
type SignInResponse struct {
	Success     bool                `json:"success"`
	AccessToken string              `json:"access_token"`
	User        models.UserIdentity `json:"user"`
}

// SignUpResponse is the body of a successful POST /signup.
type SignUpResponse struct {
	Success bool                `json:"success"`
	User    models.UserIdentity `json:"user"`
}

// ProfileResponse is the body of GET /profile.
type ProfileResponse struct {
	User models.UserIdentity `json:"user"`
}

// ReviewListResponse is the body of GET /reviews.
type ReviewListResponse struct {
	Reviews []models.Review `json:"reviews"`
}

// CreateReviewResponse is the body of a successful POST /reviews.
type CreateReviewResponse struct {
	Success bool           `json:"success"`
	Review  *models.Review `json:"review"`
}

// SuccessResponse is the body of operations with nothing else to return.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PlanResponse is the body of GET /user-plan.
type PlanResponse struct {
	Plan string `json:"plan"`
}

// UpdatePlanResponse is the body of a successful POST /update-plan.
type UpdatePlanResponse struct {
	Success bool   `json:"success"`
	Plan    string `json:"plan"`
}

// CheckoutResponse is the body of a successful POST /create-checkout.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// WebhookAckResponse acknowledges a processed webhook delivery.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}

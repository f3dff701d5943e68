package db

import (
	"context"

	"purenote-backend-go/internal/models"
)

// ReviewRepository defines the interface for review record storage.
type ReviewRepository interface {
	// List returns every stored review, in store order (callers sort).
	List(ctx context.Context) ([]models.Review, error)
	// Get retrieves a review by its full ID. Returns ErrNotFound when absent.
	Get(ctx context.Context, reviewID string) (*models.Review, error)
	Set(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, reviewID string) error
}

// PlanRepository defines the interface for per-user plan record storage.
type PlanRepository interface {
	// Get retrieves the plan record for a user. Returns ErrNotFound when the
	// user has never set a plan.
	Get(ctx context.Context, userID string) (*models.UserPlan, error)
	Set(ctx context.Context, plan *models.UserPlan) error
}

// DonationRepository defines the interface for donation record storage,
// addressed by checkout session ID.
type DonationRepository interface {
	Get(ctx context.Context, sessionID string) (*models.Donation, error)
	Set(ctx context.Context, donation *models.Donation) error
}

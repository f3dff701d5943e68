package core

import (
	"context"

	"purenote-backend-go/internal/models"
	"purenote-backend-go/internal/payments"
)

// AuthService is the identity gate plus the signup/sign-in pass-throughs to
// the identity provider.
type AuthService interface {
	// SignIn exchanges email/password for an ID token via the identity
	// provider. Provider rejections surface as ErrInvalidInput.
	SignIn(ctx context.Context, email, password string) (*models.AuthSession, error)
	// SignUp creates a user at the identity provider with a pre-confirmed email.
	SignUp(ctx context.Context, email, password, name string) (*models.UserIdentity, error)
	// Verify resolves a bearer token to a user identity. It has no side
	// effects and re-validates on every call; tokens may be revoked between
	// calls, so nothing is cached.
	Verify(ctx context.Context, idToken string) (*models.UserIdentity, error)
}

// ReviewService defines review CRUD with ownership enforcement.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, identity models.UserIdentity, rating int, comment string) (*models.Review, error)
	DeleteReview(ctx context.Context, identity models.UserIdentity, reviewID string) error
}

// PlanService tracks the single current-plan value per user.
type PlanService interface {
	// GetPlan returns the user's plan, or "free" for anonymous callers and
	// users with no stored record.
	GetPlan(ctx context.Context, identity *models.UserIdentity) (string, error)
	UpdatePlan(ctx context.Context, identity models.UserIdentity, plan string) (string, error)
}

// DonationService drives the donation lifecycle: checkout session creation
// with a pending record, then webhook-driven completion.
type DonationService interface {
	// CreateCheckout returns the processor's hosted redirect URL. origin is
	// the caller's declared origin for redirect targets; empty falls back to
	// the configured default.
	CreateCheckout(ctx context.Context, req models.CreateCheckoutRequest, origin string) (string, error)
	HandleCompletionEvent(ctx context.Context, payload []byte, signature string) error
}

// PaymentClient is the slice of the payment processor the donation workflow
// depends on. Implemented by payments.Client; faked in tests.
type PaymentClient interface {
	Configured() bool
	CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (*payments.CheckoutSession, error)
	ParseEvent(payload []byte, signature string) (*payments.Event, error)
}

package core

import (
	"context"
	"fmt"

	"purenote-backend-go/internal/db"
	"purenote-backend-go/internal/models"
	"purenote-backend-go/internal/payments"
)

// fakeReviewRepo is an in-memory db.ReviewRepository.
type fakeReviewRepo struct {
	reviews map[string]models.Review

	listErr error
	getErr  error
	setErr  error
	delErr  error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]models.Review)}
}

func (r *fakeReviewRepo) List(ctx context.Context) ([]models.Review, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		out = append(out, review)
	}
	return out, nil
}

func (r *fakeReviewRepo) Get(ctx context.Context, reviewID string) (*models.Review, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	review, ok := r.reviews[reviewID]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", reviewID, db.ErrNotFound)
	}
	return &review, nil
}

func (r *fakeReviewRepo) Set(ctx context.Context, review *models.Review) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.reviews[review.ID] = *review
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, reviewID string) error {
	if r.delErr != nil {
		return r.delErr
	}
	delete(r.reviews, reviewID)
	return nil
}

// fakePlanRepo is an in-memory db.PlanRepository.
type fakePlanRepo struct {
	plans map[string]models.UserPlan

	getErr error
	setErr error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]models.UserPlan)}
}

func (r *fakePlanRepo) Get(ctx context.Context, userID string) (*models.UserPlan, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	plan, ok := r.plans[userID]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", userID, db.ErrNotFound)
	}
	return &plan, nil
}

func (r *fakePlanRepo) Set(ctx context.Context, plan *models.UserPlan) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.plans[plan.UserID] = *plan
	return nil
}

// fakeDonationRepo is an in-memory db.DonationRepository that counts writes.
type fakeDonationRepo struct {
	donations map[string]models.Donation
	setCalls  int

	getErr error
	setErr error
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: make(map[string]models.Donation)}
}

func (r *fakeDonationRepo) Get(ctx context.Context, sessionID string) (*models.Donation, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	donation, ok := r.donations[sessionID]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", sessionID, db.ErrNotFound)
	}
	return &donation, nil
}

func (r *fakeDonationRepo) Set(ctx context.Context, donation *models.Donation) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.setCalls++
	r.donations[donation.SessionID] = *donation
	return nil
}

// fakePaymentClient implements PaymentClient without touching Stripe.
type fakePaymentClient struct {
	configured bool

	session    *payments.CheckoutSession
	createErr  error
	lastParams payments.CheckoutParams

	event    *payments.Event
	parseErr error
}

func (c *fakePaymentClient) Configured() bool { return c.configured }

func (c *fakePaymentClient) CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (*payments.CheckoutSession, error) {
	c.lastParams = p
	if c.createErr != nil {
		return nil, c.createErr
	}
	return c.session, nil
}

func (c *fakePaymentClient) ParseEvent(payload []byte, signature string) (*payments.Event, error) {
	if c.parseErr != nil {
		return nil, c.parseErr
	}
	return c.event, nil
}

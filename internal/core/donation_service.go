package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"purenote-backend-go/internal/db"
	"purenote-backend-go/internal/models"
	"purenote-backend-go/internal/payments"
)

const (
	donationProductName        = "Don à Pure Note"
	donationDefaultDescription = "Soutien au projet Pure Note"
)

// donationService implements DonationService.
type donationService struct {
	repo          db.DonationRepository
	payments      PaymentClient
	defaultOrigin string
	logger        *zap.Logger
}

// NewDonationService creates a DonationService. defaultOrigin is the redirect
// origin used when the caller declares none.
func NewDonationService(repo db.DonationRepository, payments PaymentClient, defaultOrigin string, logger *zap.Logger) DonationService {
	return &donationService{
		repo:          repo,
		payments:      payments,
		defaultOrigin: defaultOrigin,
		logger:        logger,
	}
}

// CreateCheckout creates a processor checkout session for the donation amount
// and persists a pending donation record keyed by the session ID. Checkout
// creation is not retried: without idempotency-key support a retry could
// charge twice, so failures surface to the caller for a whole-request retry.
func (s *donationService) CreateCheckout(ctx context.Context, req models.CreateCheckoutRequest, origin string) (string, error) {
	if !s.payments.Configured() {
		return "", fmt.Errorf("%w: STRIPE_SECRET_KEY is not set", ErrPaymentNotConfigured)
	}
	if req.Amount <= 0 {
		return "", fmt.Errorf("%w: donation amount must be positive", ErrInvalidInput)
	}

	// Euros to cents; the minor-unit conversion happens only here, at the
	// processor boundary.
	amountMinor := int64(math.Round(req.Amount * 100))

	if origin == "" {
		origin = s.defaultOrigin
	}

	description := req.DonorMessage
	if description == "" {
		description = donationDefaultDescription
	}

	s.logger.Info("Creating donation checkout",
		zap.Float64("amount", req.Amount),
		zap.Int64("amountMinor", amountMinor),
		zap.String("origin", origin),
		zap.String("message", truncate(req.DonorMessage, 50)),
	)

	sess, err := s.payments.CreateCheckoutSession(ctx, payments.CheckoutParams{
		AmountMinor:   amountMinor,
		ProductName:   donationProductName,
		Description:   description,
		CustomerEmail: req.UserEmail,
		SuccessURL:    origin + "?donation=success",
		CancelURL:     origin + "?donation=cancelled",
		Message:       req.DonorMessage,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	donation := &models.Donation{
		SessionID: sess.ID,
		Amount:    req.Amount,
		Message:   req.DonorMessage,
		Email:     req.UserEmail,
		CreatedAt: time.Now().UTC(),
		Status:    models.DonationStatusPending,
	}
	if err := s.repo.Set(ctx, donation); err != nil {
		return "", fmt.Errorf("%w: saving donation record: %v", ErrStorage, err)
	}

	s.logger.Info("Donation checkout created", zap.String("sessionId", sess.ID))
	return sess.URL, nil
}

// HandleCompletionEvent verifies and applies a processor webhook event. The
// signature is checked before any trust is placed in the payload. Completion
// is idempotent: replaying an event for an already-completed donation changes
// nothing, and events for unknown sessions are acknowledged and dropped.
func (s *donationService) HandleCompletionEvent(ctx context.Context, payload []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("%w: missing signature header", ErrInvalidInput)
	}

	event, err := s.payments.ParseEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if event.Type != payments.EventCheckoutCompleted {
		return nil
	}

	donation, err := s.repo.Get(ctx, event.CheckoutSessionID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Not actionable; a completion for a session we never recorded is
			// acknowledged so the processor stops redelivering it.
			s.logger.Info("Completion event for unknown session, dropping",
				zap.String("sessionId", event.CheckoutSessionID))
			return nil
		}
		return fmt.Errorf("%w: loading donation %q: %v", ErrStorage, event.CheckoutSessionID, err)
	}

	if donation.Status == models.DonationStatusCompleted {
		return nil
	}

	now := time.Now().UTC()
	donation.Status = models.DonationStatusCompleted
	donation.CompletedAt = &now
	if err := s.repo.Set(ctx, donation); err != nil {
		return fmt.Errorf("%w: completing donation %q: %v", ErrStorage, donation.SessionID, err)
	}

	s.logger.Info("Donation completed", zap.String("sessionId", donation.SessionID))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

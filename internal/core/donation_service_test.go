package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"purenote-backend-go/internal/models"
	"purenote-backend-go/internal/payments"
)

const testOrigin = "https://notes.example.com"

func newDonationFixture(configured bool) (*donationService, *fakeDonationRepo, *fakePaymentClient) {
	repo := newFakeDonationRepo()
	client := &fakePaymentClient{
		configured: configured,
		session:    &payments.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"},
	}
	svc := NewDonationService(repo, client, "https://purenote.app", zap.NewNop()).(*donationService)
	return svc, repo, client
}

func TestCreateCheckout_UnconfiguredProcessor(t *testing.T) {
	svc, repo, _ := newDonationFixture(false)

	_, err := svc.CreateCheckout(context.Background(), models.CreateCheckoutRequest{Amount: 10}, testOrigin)
	assert.ErrorIs(t, err, ErrPaymentNotConfigured)
	assert.Empty(t, repo.donations)
}

func TestCreateCheckout_RejectsNonPositiveAmount(t *testing.T) {
	svc, repo, client := newDonationFixture(true)

	for _, amount := range []float64{0, -1, -0.01} {
		_, err := svc.CreateCheckout(context.Background(), models.CreateCheckoutRequest{Amount: amount}, testOrigin)
		assert.ErrorIs(t, err, ErrInvalidInput, "amount %v should be rejected", amount)
	}
	assert.Empty(t, repo.donations)
	assert.Zero(t, client.lastParams.AmountMinor, "no session should be created for invalid amounts")
}

func TestCreateCheckout_ConvertsToMinorUnits(t *testing.T) {
	svc, _, client := newDonationFixture(true)

	_, err := svc.CreateCheckout(context.Background(), models.CreateCheckoutRequest{Amount: 12.50}, testOrigin)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), client.lastParams.AmountMinor)
}

func TestCreateCheckout_PersistsPendingRecord(t *testing.T) {
	svc, repo, client := newDonationFixture(true)

	url, err := svc.CreateCheckout(context.Background(), models.CreateCheckoutRequest{
		Amount:       25,
		DonorMessage: "keep it up",
		UserEmail:    "donor@example.com",
	}, testOrigin)
	require.NoError(t, err)
	assert.Equal(t, client.session.URL, url)

	donation, ok := repo.donations["cs_test_123"]
	require.True(t, ok, "a pending donation must be keyed by the session ID")
	assert.Equal(t, models.DonationStatusPending, donation.Status)
	assert.Equal(t, 25.0, donation.Amount)
	assert.Equal(t, "keep it up", donation.Message)
	assert.Equal(t, "donor@example.com", donation.Email)
	assert.Nil(t, donation.CompletedAt)

	assert.Equal(t, testOrigin+"?donation=success", client.lastParams.SuccessURL)
	assert.Equal(t, testOrigin+"?donation=cancelled", client.lastParams.CancelURL)
}

func TestCreateCheckout_FallsBackToDefaultOrigin(t *testing.T) {
	svc, _, client := newDonationFixture(true)

	_, err := svc.CreateCheckout(context.Background(), models.CreateCheckoutRequest{Amount: 5}, "")
	require.NoError(t, err)
	assert.Equal(t, "https://purenote.app?donation=success", client.lastParams.SuccessURL)
}

func TestCreateCheckout_ProviderFailure(t *testing.T) {
	svc, repo, client := newDonationFixture(true)
	client.createErr = errors.New("stripe: rate limited")

	_, err := svc.CreateCheckout(context.Background(), models.CreateCheckoutRequest{Amount: 5}, testOrigin)
	assert.ErrorIs(t, err, ErrPaymentProvider)
	assert.Empty(t, repo.donations, "no record may be written when session creation fails")
}

func TestHandleCompletionEvent_MissingSignature(t *testing.T) {
	svc, _, _ := newDonationFixture(true)

	err := svc.HandleCompletionEvent(context.Background(), []byte("{}"), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHandleCompletionEvent_BadSignature(t *testing.T) {
	svc, _, client := newDonationFixture(true)
	client.parseErr = errors.New("webhook signature verification failed")

	err := svc.HandleCompletionEvent(context.Background(), []byte("{}"), "t=1,v1=bogus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHandleCompletionEvent_UnknownSessionDropped(t *testing.T) {
	svc, repo, client := newDonationFixture(true)
	client.event = &payments.Event{Type: payments.EventCheckoutCompleted, CheckoutSessionID: "cs_unknown"}

	err := svc.HandleCompletionEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err, "unknown sessions are acknowledged, not errors")
	assert.Empty(t, repo.donations)
	assert.Zero(t, repo.setCalls)
}

func TestHandleCompletionEvent_IgnoresOtherEventTypes(t *testing.T) {
	svc, repo, client := newDonationFixture(true)
	repo.donations["cs_test_123"] = models.Donation{SessionID: "cs_test_123", Status: models.DonationStatusPending}
	client.event = &payments.Event{Type: "invoice.payment_succeeded"}

	require.NoError(t, svc.HandleCompletionEvent(context.Background(), []byte("{}"), "sig"))
	assert.Equal(t, models.DonationStatusPending, repo.donations["cs_test_123"].Status)
}

func TestHandleCompletionEvent_CompletesPendingDonation(t *testing.T) {
	svc, repo, client := newDonationFixture(true)
	repo.donations["cs_test_123"] = models.Donation{SessionID: "cs_test_123", Status: models.DonationStatusPending}
	client.event = &payments.Event{Type: payments.EventCheckoutCompleted, CheckoutSessionID: "cs_test_123"}

	require.NoError(t, svc.HandleCompletionEvent(context.Background(), []byte("{}"), "sig"))

	donation := repo.donations["cs_test_123"]
	assert.Equal(t, models.DonationStatusCompleted, donation.Status)
	require.NotNil(t, donation.CompletedAt)
}

func TestHandleCompletionEvent_ReplayIsIdempotent(t *testing.T) {
	svc, repo, client := newDonationFixture(true)
	repo.donations["cs_test_123"] = models.Donation{SessionID: "cs_test_123", Status: models.DonationStatusPending}
	client.event = &payments.Event{Type: payments.EventCheckoutCompleted, CheckoutSessionID: "cs_test_123"}

	require.NoError(t, svc.HandleCompletionEvent(context.Background(), []byte("{}"), "sig"))
	first := repo.donations["cs_test_123"]
	writesAfterFirst := repo.setCalls

	require.NoError(t, svc.HandleCompletionEvent(context.Background(), []byte("{}"), "sig"))
	second := repo.donations["cs_test_123"]

	assert.Equal(t, first.CompletedAt, second.CompletedAt, "replay must not move completedAt")
	assert.Equal(t, writesAfterFirst, repo.setCalls, "replay must not write again")
}

package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"purenote-backend-go/internal/core"
	"purenote-backend-go/internal/models"
)

// stripeSignatureHeader carries the processor's webhook signature.
const stripeSignatureHeader = "Stripe-Signature"

// DonationHandler handles checkout creation and the payment webhook.
type DonationHandler struct {
	donationService core.DonationService
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(ds core.DonationService) *DonationHandler {
	return &DonationHandler{donationService: ds}
}

// CreateCheckout handles POST /create-checkout. Public: donations do not
// require an account.
func (h *DonationHandler) CreateCheckout(c *gin.Context) {
	var req models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	url, err := h.donationService.CreateCheckout(c.Request.Context(), req, c.GetHeader("Origin"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{URL: url})
}

// Webhook handles POST /payment-webhook. The processor authenticates itself
// via the signature header, verified inside the donation service. Per the
// endpoint contract every failure is a 400; a completed-but-unknown session is
// still an acknowledgement.
func (h *DonationHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Webhook handler failed"})
		return
	}

	// Detach from the request context: once the event is verified the status
	// write must not be cancelled by a client disconnect, or the donation
	// would be stuck pending with the processor done redelivering.
	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.donationService.HandleCompletionEvent(ctx, payload, c.GetHeader(stripeSignatureHeader)); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Webhook handler failed"})
		return
	}

	c.JSON(http.StatusOK, WebhookAckResponse{Received: true})
}

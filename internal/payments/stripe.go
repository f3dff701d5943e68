// Package payments wraps the Stripe Go SDK behind the narrow surface the
// donation workflow needs: create a one-shot checkout session and verify an
// incoming webhook event.
package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

// EventCheckoutCompleted is the only event type the donation workflow acts on.
const EventCheckoutCompleted = "checkout.session.completed"

// CheckoutParams describes one hosted checkout session. AmountMinor is in the
// currency's minor unit (euro cents).
type CheckoutParams struct {
	AmountMinor   int64
	ProductName   string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	// Message is carried in the session metadata so completion events can be
	// correlated with the donor's note.
	Message string
}

// CheckoutSession is the processor-side resource created for one payment
// attempt: its opaque ID and the hosted redirect URL.
type CheckoutSession struct {
	ID  string
	URL string
}

// Event is a verified webhook notification. CheckoutSessionID is populated
// only for checkout completion events.
type Event struct {
	Type              string
	CheckoutSessionID string
}

// Client talks to Stripe. A Client with an empty secret key is valid but
// unconfigured: Configured reports false and checkout creation must not be
// attempted.
type Client struct {
	secretKey     string
	webhookSecret string
}

// NewClient creates a Stripe client. The SDK keys off the package-global
// stripe.Key, set once here at startup.
func NewClient(secretKey, webhookSecret string) *Client {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &Client{secretKey: secretKey, webhookSecret: webhookSecret}
}

// Configured reports whether a secret key is present.
func (c *Client) Configured() bool {
	return c.secretKey != ""
}

// CreateCheckoutSession creates a one-shot payment-mode checkout session in
// EUR with a single card line item.
func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyEUR)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ProductName),
						Description: stripe.String(p.Description),
					},
					UnitAmount: stripe.Int64(p.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.Context = ctx
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	params.AddMetadata("type", "donation")
	params.AddMetadata("message", p.Message)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session creation failed: %w", err)
	}
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseEvent verifies the webhook payload against the signing secret and
// returns the typed event. Verification failure means the payload cannot be
// trusted and must be rejected.
func (c *Client) ParseEvent(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	out := &Event{Type: string(event.Type)}
	if out.Type == EventCheckoutCompleted {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session from event: %w", err)
		}
		out.CheckoutSessionID = sess.ID
	}
	return out, nil
}

package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"github.com/plateformprojob/backend/config"
)

// Session is the slice of a Stripe checkout session the application
// cares about.
type Session struct {
	ID                string
	URL               string
	Paid              bool
	ClientReferenceID string
}

// CheckoutClient creates and retrieves Stripe checkout sessions for
// job-credit purchases.
type CheckoutClient struct {
	priceID    string
	successURL string
	cancelURL  string
}

// NewCheckoutClient configures the Stripe SDK and returns a checkout
// client.
func NewCheckoutClient(cfg *config.Config) *CheckoutClient {
	stripe.Key = cfg.StripeSecretKey

	return &CheckoutClient{
		priceID:    cfg.StripePriceID,
		successURL: cfg.CheckoutSuccessURL,
		cancelURL:  cfg.CheckoutCancelURL,
	}
}

// CreateSession opens a hosted checkout session for one job credit.
// The purchasing user's ID is carried as client_reference_id so
// fulfillment can verify who paid.
func (c *CheckoutClient) CreateSession(userID string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(c.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(c.successURL + "&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(userID),
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &Session{
		ID:                s.ID,
		URL:               s.URL,
		Paid:              s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		ClientReferenceID: s.ClientReferenceID,
	}, nil
}

// GetSession retrieves a checkout session for fulfillment
func (c *CheckoutClient) GetSession(sessionID string) (*Session, error) {
	s, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	return &Session{
		ID:                s.ID,
		URL:               s.URL,
		Paid:              s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		ClientReferenceID: s.ClientReferenceID,
	}, nil
}

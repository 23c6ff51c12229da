// Package payment wraps the external card-payment gateway. Only the
// payment-intent handshake lives here; card collection and confirmation
// happen on the client against the gateway directly.
package payment

import (
	"context"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/paymentintent"
)

type Gateway interface {
	// CreateIntent registers a payment of amount (smallest currency unit)
	// and returns the intent ID plus the client secret used to confirm it.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, string, error)
}

type stripeGateway struct{}

func NewStripeGateway() (Gateway, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}
	stripe.Key = key
	return &stripeGateway{}, nil
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ID, intent.ClientSecret, nil
}

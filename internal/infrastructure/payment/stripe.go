package payment

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// GatewayError is returned for any failure reported by the payment provider.
type GatewayError struct {
	cause error
}

func (e *GatewayError) Error() string { return "payment gateway: " + e.cause.Error() }

func (e *GatewayError) Unwrap() error { return e.cause }

// intentCreator is the subset of the Stripe payment intent client the gateway uses.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type StripeGateway struct {
	intents intentCreator
}

// NewStripeGateway builds a gateway for secretKey. apiURL overrides the Stripe API base URL when set.
func NewStripeGateway(secretKey, apiURL string) *StripeGateway {
	backend := stripe.GetBackend(stripe.APIBackend)
	if apiURL != "" {
		backend = stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{URL: stripe.String(apiURL)})
	}
	return &StripeGateway{intents: &paymentintent.Client{B: backend, Key: secretKey}}
}

// ToMinorUnits converts an amount in dollars to cents.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreatePaymentIntent creates a USD intent for amount and returns its client secret.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToMinorUnits(amount)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := g.intents.New(params)
	if err != nil {
		return "", &GatewayError{cause: errors.Wrap(err, "create payment intent")}
	}
	return pi.ClientSecret, nil
}

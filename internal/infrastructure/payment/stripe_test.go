package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakeIntents struct {
	got    *stripe.PaymentIntentParams
	secret string
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ClientSecret: f.secret}, nil
}

func TestCreatePaymentIntentSendsCents(t *testing.T) {
	fake := &fakeIntents{secret: "pi_123_secret_abc"}
	gw := &StripeGateway{intents: fake}

	secret, err := gw.CreatePaymentIntent(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)

	require.NotNil(t, fake.got)
	assert.Equal(t, int64(50000), *fake.got.Amount)
	assert.Equal(t, "usd", *fake.got.Currency)
	assert.True(t, *fake.got.AutomaticPaymentMethods.Enabled)
}

func TestCreatePaymentIntentWrapsFailures(t *testing.T) {
	cause := errors.New("card network down")
	gw := &StripeGateway{intents: &fakeIntents{err: cause}}

	_, err := gw.CreatePaymentIntent(context.Background(), 1)
	require.Error(t, err)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.ErrorIs(t, err, cause)
}

func TestToMinorUnits(t *testing.T) {
	cases := map[float64]int64{
		0:     0,
		1:     100,
		19.99: 1999,
		0.1:   10,
		500:   50000,
	}
	for in, want := range cases {
		assert.Equal(t, want, ToMinorUnits(in), "amount %v", in)
	}
}

func TestStripeGatewayAgainstHTTPServer(t *testing.T) {
	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_x"}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway("sk_test_123", srv.URL)
	secret, err := gw.CreatePaymentIntent(context.Background(), 25.5)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret_x", secret)
	assert.Equal(t, []string{"2550"}, form["amount"])
	assert.Equal(t, []string{"usd"}, form["currency"])
	assert.Equal(t, []string{"true"}, form["automatic_payment_methods[enabled]"])
}

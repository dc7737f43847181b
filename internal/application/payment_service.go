package application

import (
	"context"

	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
)

// PaymentGateway creates provider-side payment intents.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
}

type PaymentService struct {
	Gateway PaymentGateway
}

func NewPaymentService(gw PaymentGateway) *PaymentService {
	return &PaymentService{Gateway: gw}
}

// CreateIntent returns the client secret for a payment of price dollars.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price < 0 {
		return "", apperrors.NewValidation("price must be at least 0")
	}
	return s.Gateway.CreatePaymentIntent(ctx, price)
}

package checkout

import (
	"context"

	"storefront-bff/internal/models"
)

// PaymentGateway is the hosted-payment overlay capability. The wizard only
// knows it hands over a server-issued intent and gets back either a signed
// receipt or a failure; the concrete provider shape stays outside.
type PaymentGateway interface {
	Open(ctx context.Context, req PaymentRequest) (*Receipt, error)
}

type PaymentRequest struct {
	Intent      models.PaymentIntent
	KeyID       string
	Description string
	Prefill     Prefill
}

// Prefill is passed through to the provider overlay for convenience only.
type Prefill struct {
	Name    string
	Contact string
}

// Receipt carries the provider's signed proof of payment, verified
// server-side before the order is considered paid.
type Receipt struct {
	ProviderOrderID   string
	ProviderPaymentID string
	ProviderSignature string
}

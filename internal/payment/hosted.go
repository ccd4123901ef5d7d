// Package payment adapts the hosted-payment provider to the checkout
// gateway capability. The provider runs the actual card flow; this client
// only opens the hosted overlay and waits for its verdict.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-bff/internal/checkout"
)

type HostedClient struct {
	baseURL string
	client  *http.Client
}

func NewHostedClient(baseURL string) *HostedClient {
	return &HostedClient{
		baseURL: baseURL,
		client: &http.Client{
			// Hosted flows involve a human; allow for it.
			Timeout: 5 * time.Minute,
		},
	}
}

type openRequest struct {
	OrderID     string `json:"order_id"`
	KeyID       string `json:"key_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Name        string `json:"prefill_name"`
	Contact     string `json:"prefill_contact"`
}

type openResponse struct {
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Open blocks until the hosted overlay reports success or failure. A
// provider-reported failure comes back as an error; the caller decides what
// happens to the pending order (nothing, per the checkout contract).
func (c *HostedClient) Open(ctx context.Context, req checkout.PaymentRequest) (*checkout.Receipt, error) {
	body, err := json.Marshal(openRequest{
		OrderID:     req.Intent.ID,
		KeyID:       req.KeyID,
		Amount:      req.Intent.Amount,
		Currency:    req.Intent.Currency,
		Description: req.Description,
		Name:        req.Prefill.Name,
		Contact:     req.Prefill.Contact,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/overlay/open", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result openResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode overlay response: %w", err)
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("provider reported %s: %s", result.Status, result.Reason)
	}

	return &checkout.Receipt{
		ProviderOrderID:   result.OrderID,
		ProviderPaymentID: result.PaymentID,
		ProviderSignature: result.Signature,
	}, nil
}

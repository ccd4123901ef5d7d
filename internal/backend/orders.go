package backend

import (
	"context"

	"storefront-bff/internal/models"
)

// CreateOrderRequest carries the frozen snapshot assembled at checkout. Line
// items capture name/price/image at order time, decoupled from live products.
type CreateOrderRequest struct {
	Items           []models.OrderItem `json:"items"`
	ShippingAddress models.Address     `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	Subtotal        float64            `json:"subtotal"`
	ShippingCharges float64            `json:"shippingCharges"`
	Tax             float64            `json:"tax"`
	TotalAmount     float64            `json:"totalAmount"`
}

// CreateOrderResponse includes a provider payment intent when the order was
// placed with an online payment method.
type CreateOrderResponse struct {
	Success bool                  `json:"success"`
	Order   *models.Order         `json:"order"`
	Intent  *models.PaymentIntent `json:"razorpayOrder"`
}

type VerifyPaymentRequest struct {
	OrderID           string `json:"orderId"`
	ProviderOrderID   string `json:"razorpayOrderId"`
	ProviderPaymentID string `json:"razorpayPaymentId"`
	ProviderSignature string `json:"razorpaySignature"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.post(ctx, "/orders", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyPayment(ctx context.Context, token string, req VerifyPaymentRequest) error {
	return c.post(ctx, "/orders/verify-payment", token, req, nil)
}

func (c *Client) GetOrders(ctx context.Context, token string) ([]models.Order, error) {
	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	if err := c.get(ctx, "/orders", token, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*models.Order, error) {
	var resp struct {
		Success bool          `json:"success"`
		Order   *models.Order `json:"order"`
	}
	if err := c.get(ctx, "/orders/"+orderID, token, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

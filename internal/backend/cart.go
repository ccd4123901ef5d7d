package backend

import (
	"context"

	"storefront-bff/internal/models"
)

type cartEnvelope struct {
	Success bool         `json:"success"`
	Cart    *models.Cart `json:"cart"`
}

// Every cart mutation returns the full cart; the server's echo is the
// authoritative replacement for whatever the caller held before.

func (c *Client) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	var resp cartEnvelope
	if err := c.get(ctx, "/cart", token, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *Client) AddToCart(ctx context.Context, token, productID string, quantity int, customization map[string]string) (*models.Cart, error) {
	body := map[string]any{
		"productId":     productID,
		"quantity":      quantity,
		"customization": customization,
	}
	var resp cartEnvelope
	if err := c.post(ctx, "/cart", token, body, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*models.Cart, error) {
	body := map[string]int{"quantity": quantity}
	var resp cartEnvelope
	if err := c.put(ctx, "/cart/"+itemID, token, body, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, token, itemID string) (*models.Cart, error) {
	var resp cartEnvelope
	if err := c.delete(ctx, "/cart/"+itemID, token, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

func (c *Client) ClearCart(ctx context.Context, token string) (*models.Cart, error) {
	var resp cartEnvelope
	if err := c.delete(ctx, "/cart", token, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

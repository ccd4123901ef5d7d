package backend

import (
	"context"

	"storefront-bff/internal/models"
)

type wishlistEnvelope struct {
	Success  bool             `json:"success"`
	Wishlist *models.Wishlist `json:"wishlist"`
}

func (c *Client) GetWishlist(ctx context.Context, token string) (*models.Wishlist, error) {
	var resp wishlistEnvelope
	if err := c.get(ctx, "/wishlist", token, &resp); err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

func (c *Client) AddToWishlist(ctx context.Context, token, productID string) (*models.Wishlist, error) {
	var resp wishlistEnvelope
	if err := c.post(ctx, "/wishlist/"+productID, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token, productID string) (*models.Wishlist, error) {
	var resp wishlistEnvelope
	if err := c.delete(ctx, "/wishlist/"+productID, token, &resp); err != nil {
		return nil, err
	}
	return resp.Wishlist, nil
}

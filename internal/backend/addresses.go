package backend

import (
	"context"

	"storefront-bff/internal/models"
)

type addressesEnvelope struct {
	Success   bool             `json:"success"`
	Addresses []models.Address `json:"addresses"`
}

// Address endpoints return the user's full address book after every mutation,
// same replace-the-aggregate contract as the cart.

func (c *Client) GetAddresses(ctx context.Context, token string) ([]models.Address, error) {
	var resp addressesEnvelope
	if err := c.get(ctx, "/addresses", token, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

func (c *Client) SaveAddress(ctx context.Context, token string, addr models.Address) ([]models.Address, error) {
	var resp addressesEnvelope
	if err := c.post(ctx, "/addresses", token, addr, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

func (c *Client) DeleteAddress(ctx context.Context, token, addressID string) ([]models.Address, error) {
	var resp addressesEnvelope
	if err := c.delete(ctx, "/addresses/"+addressID, token, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

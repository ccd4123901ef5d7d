package backend

import (
	"context"

	"storefront-bff/internal/models"
)

type productsEnvelope struct {
	Success  bool             `json:"success"`
	Products []models.Product `json:"products"`
}

func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsEnvelope
	if err := c.get(ctx, "/products", "", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsEnvelope
	if err := c.get(ctx, "/products/featured", "", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var resp struct {
		Success bool            `json:"success"`
		Product *models.Product `json:"product"`
	}
	if err := c.get(ctx, "/products/"+productID, "", &resp); err != nil {
		return nil, err
	}
	return resp.Product, nil
}

func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var resp struct {
		Success    bool              `json:"success"`
		Categories []models.Category `json:"categories"`
	}
	if err := c.get(ctx, "/categories", "", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

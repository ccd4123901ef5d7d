package backend

import (
	"context"
	"net/url"

	"storefront-bff/internal/models"
)

// Admin endpoints. All of these require an admin-role bearer token; the
// backend re-checks the role, the gateway only gates early.

type ProductInput struct {
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	Price                float64        `json:"price"`
	CategoryID           string         `json:"category"`
	Images               []models.Image `json:"images"`
	Stock                int            `json:"stock"`
	IsFeatured           bool           `json:"isFeatured"`
	CustomizationOptions []string       `json:"customizationOptions"`
}

type CategoryInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       models.Image `json:"image"`
}

func (c *Client) AdminCreateProduct(ctx context.Context, token string, input ProductInput) error {
	return c.post(ctx, "/admin/products", token, input, nil)
}

func (c *Client) AdminUpdateProduct(ctx context.Context, token, productID string, input ProductInput) error {
	return c.put(ctx, "/admin/products/"+productID, token, input, nil)
}

func (c *Client) AdminDeleteProduct(ctx context.Context, token, productID string) error {
	return c.delete(ctx, "/admin/products/"+productID, token, nil)
}

func (c *Client) AdminCreateCategory(ctx context.Context, token string, input CategoryInput) error {
	return c.post(ctx, "/admin/categories", token, input, nil)
}

func (c *Client) AdminUpdateCategory(ctx context.Context, token, categoryID string, input CategoryInput) error {
	return c.put(ctx, "/admin/categories/"+categoryID, token, input, nil)
}

// AdminDeleteCategory fails server-side when products still reference the
// category; the server's message is surfaced verbatim via *APIError.
func (c *Client) AdminDeleteCategory(ctx context.Context, token, categoryID string) error {
	return c.delete(ctx, "/admin/categories/"+categoryID, token, nil)
}

func (c *Client) AdminGetOrders(ctx context.Context, token string, statusFilter models.OrderStatus) ([]models.Order, error) {
	path := "/admin/orders"
	if statusFilter != "" {
		path += "?status=" + url.QueryEscape(string(statusFilter))
	}
	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	if err := c.get(ctx, path, token, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) AdminUpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) error {
	body := map[string]models.OrderStatus{"orderStatus": status}
	return c.put(ctx, "/admin/orders/"+orderID, token, body, nil)
}

func (c *Client) AdminGetUsers(ctx context.Context, token string) ([]models.User, error) {
	var resp struct {
		Success bool          `json:"success"`
		Users   []models.User `json:"users"`
	}
	if err := c.get(ctx, "/admin/users", token, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, token, userID string) error {
	return c.delete(ctx, "/admin/users/"+userID, token, nil)
}

func (c *Client) AdminGetStats(ctx context.Context, token string) (*models.DashboardStats, error) {
	var resp struct {
		Success bool                   `json:"success"`
		Stats   *models.DashboardStats `json:"stats"`
	}
	if err := c.get(ctx, "/admin/stats", token, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

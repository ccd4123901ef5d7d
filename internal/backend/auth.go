package backend

import (
	"context"

	"storefront-bff/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by login and OTP verification: a bearer token
// plus the authenticated user.
type SessionResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.post(ctx, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*SessionResponse, error) {
	var resp SessionResponse
	if err := c.post(ctx, "/auth/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyOTP(ctx context.Context, userID, otp string) (*SessionResponse, error) {
	body := map[string]string{"userId": userID, "otp": otp}
	var resp SessionResponse
	if err := c.post(ctx, "/auth/verify-otp", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResendOTP(ctx context.Context, userID string) error {
	body := map[string]string{"userId": userID}
	return c.post(ctx, "/auth/resend-otp", "", body, nil)
}

// Me validates the stored token by fetching the current user. A failure here
// means the session is dead and callers must discard the token.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var resp struct {
		Success bool         `json:"success"`
		User    *models.User `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", token, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

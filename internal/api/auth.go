package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bayuwidiasantoso/gudang/pkg/model"
)

// Login authenticates with email and password. The returned token is not
// stored anywhere by the client; that is the session store's job.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp model.LoginResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

// Me fetches the user record for the current credential.
func (c *Client) Me(ctx context.Context) (*model.MeResponse, error) {
	var resp model.MeResponse
	if err := c.get(ctx, "/auth/me", &resp); err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	return &resp, nil
}

// Logout invalidates the credential server-side.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ABOUTME: Authentication endpoints and local session lifecycle
// ABOUTME: Login persists the issued token; Logout only forgets it

package client

import (
	"context"
	"fmt"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token and stores it on success
func (c *Client) Login(ctx context.Context, email, password string) (*Envelope[LoginResult], error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "email", Message: "email and password are required"}
	}

	env, err := do[LoginResult](ctx, c, send(http.MethodPost, "/api/auth/login", "/api/auth/login",
		loginRequest{Email: email, Password: password}))
	if err != nil {
		return nil, err
	}

	if result, ok := env.Value(); ok && result.AccessToken != "" {
		if err := c.store.SetToken(result.AccessToken); err != nil {
			return env, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return env, nil
}

// Logout forgets the local session. The backend is not contacted.
func (c *Client) Logout() error {
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// LoggedIn reports whether a session token is currently stored
func (c *Client) LoggedIn() bool {
	token, err := c.store.Token()
	return err == nil && token != ""
}

// Me returns the identity behind the current session
func (c *Client) Me(ctx context.Context) (*Envelope[User], error) {
	return do[User](ctx, c, get("/api/auth/me", "/api/auth/me", nil))
}

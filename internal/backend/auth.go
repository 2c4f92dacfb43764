package backend

import (
	"context"
	"net/http"

	"github.com/erazemk/konzola/internal/model"
)

// SignInResult is the remote auth service's answer to valid credentials.
type SignInResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// SignUpRequest is the account registration payload.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a user and an API token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result SignInResult
	if err := c.do(ctx, "signin", http.MethodPost, "/api/auth/signin", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignUp registers a new account and returns the server's message.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (string, error) {
	var result struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "signup", http.MethodPost, "/api/auth/signup", req, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

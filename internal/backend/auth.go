package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carson-networks/budget-seeder/api"
)

// Register issues POST /auth/register. The backend answers 400 with an
// "already exists" body when the user was registered by an earlier run; the
// caller decides how to treat that.
func (c *Client) Register(ctx context.Context, creds api.Credentials) (CallResult, error) {
	return c.post(ctx, "/auth/register", creds)
}

// Login issues POST /auth/login and parses the token out of a 200 body.
// The parsed response is nil unless the call succeeded.
func (c *Client) Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, CallResult, error) {
	result, err := c.post(ctx, "/auth/login", creds)
	if err != nil {
		return nil, CallResult{}, err
	}
	if !result.OK() {
		return nil, result, nil
	}

	var login api.LoginResponse
	if err := json.Unmarshal(result.Body, &login); err != nil {
		return nil, result, fmt.Errorf("decode login response: %w", err)
	}

	return &login, result, nil
}

package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carson-networks/budget-seeder/api"
)

// CreateAccount issues POST /accounts. On 200 the response is parsed into the
// tagged flat/wrapped shape; resolve the id through AccountID. The parsed
// response is nil unless the call succeeded.
func (c *Client) CreateAccount(ctx context.Context, req api.CreateAccountRequest) (*api.CreateAccountResponse, CallResult, error) {
	result, err := c.post(ctx, "/accounts", req)
	if err != nil {
		return nil, CallResult{}, err
	}
	if !result.OK() {
		return nil, result, nil
	}

	var created api.CreateAccountResponse
	if err := json.Unmarshal(result.Body, &created); err != nil {
		return nil, result, fmt.Errorf("decode account response: %w", err)
	}

	return &created, result, nil
}

package backend

import (
	"context"

	"github.com/carson-networks/budget-seeder/api"
)

// CreateTransaction issues POST /transactions. Only the status matters to the
// caller; the body is kept raw for error reporting.
func (c *Client) CreateTransaction(ctx context.Context, req api.CreateTransactionRequest) (CallResult, error) {
	return c.post(ctx, "/transactions", req)
}

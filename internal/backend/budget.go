package backend

import (
	"context"

	"github.com/carson-networks/budget-seeder/api"
)

// CreateBudget issues POST /budgets. Only the status matters to the caller;
// the body is kept raw for error reporting.
func (c *Client) CreateBudget(ctx context.Context, req api.CreateBudgetRequest) (CallResult, error) {
	return c.post(ctx, "/budgets", req)
}

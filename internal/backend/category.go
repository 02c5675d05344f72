package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carson-networks/budget-seeder/api"
)

// ListCategories issues GET /categories. The slice is nil unless the call
// succeeded.
func (c *Client) ListCategories(ctx context.Context) ([]api.CategoryPayload, CallResult, error) {
	result, err := c.get(ctx, "/categories")
	if err != nil {
		return nil, CallResult{}, err
	}
	if !result.OK() {
		return nil, result, nil
	}

	var categories []api.CategoryPayload
	if err := json.Unmarshal(result.Body, &categories); err != nil {
		return nil, result, fmt.Errorf("decode category list: %w", err)
	}

	return categories, result, nil
}

// CreateCategory issues POST /categories. The response body is not parsed;
// ids are resolved by re-listing afterwards.
func (c *Client) CreateCategory(ctx context.Context, req api.CreateCategoryRequest) (CallResult, error) {
	return c.post(ctx, "/categories", req)
}

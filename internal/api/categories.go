package api

import (
	"context"
	"fmt"

	"duit/internal/model"
)

// CategoryPayload is the create/update body for a category.
type CategoryPayload struct {
	Name  string                `json:"name"`
	Type  model.TransactionType `json:"type"`
	Icon  string                `json:"icon"`
	Color string                `json:"color"`
}

// normalize applies the defaults the backend expects for omitted fields.
func (p CategoryPayload) normalize() CategoryPayload {
	if p.Type == "" {
		p.Type = model.TypeExpense
	}
	if p.Color == "" {
		p.Color = model.DefaultColor
	}
	return p
}

// ListCategories fetches the full category collection. There is no
// single-category endpoint.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.do(ctx, "GET", "/categories/", nil, &out, categoryListSchema, "category list", "Failed to fetch categories"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory adds a new category.
func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) (model.Category, error) {
	var out model.Category
	if err := c.do(ctx, "POST", "/categories/", payload.normalize(), &out, categorySchema, "category", "Failed to add category"); err != nil {
		return model.Category{}, err
	}
	return out, nil
}

// UpdateCategory patches an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, payload CategoryPayload) (model.Category, error) {
	var out model.Category
	path := fmt.Sprintf("/categories/%d", id)
	if err := c.do(ctx, "PATCH", path, payload.normalize(), &out, categorySchema, "category", "Failed to edit category"); err != nil {
		return model.Category{}, err
	}
	return out, nil
}

// DeleteCategory removes a category. Transactions referencing it keep
// their stale category_id and display as uncategorized; nothing cascades.
func (c *Client) DeleteCategory(ctx context.Context, id int64) (string, error) {
	path := fmt.Sprintf("/categories/%d", id)
	if err := c.do(ctx, "DELETE", path, nil, nil, nil, "category", "Failed to delete category"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Category %d successfully deleted", id), nil
}

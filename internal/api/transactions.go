package api

import (
	"context"
	"fmt"

	"duit/internal/model"
)

// TransactionPayload is the create/update body for a transaction. Nil
// pointer fields serialize as JSON null, which the backend accepts.
type TransactionPayload struct {
	Note        *string               `json:"note"`
	CategoryID  *int64                `json:"category_id"`
	AccountID   *int64                `json:"account_id"`
	Type        model.TransactionType `json:"type"`
	Date        string                `json:"date"`
	AmountCents int64                 `json:"amount_cents"`
}

// ListTransactions fetches the full transaction collection. Pagination is
// client-side only; the backend always returns everything.
func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.do(ctx, "GET", "/transactions/", nil, &out, txnListSchema, "transaction list", "Failed to fetch transactions"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	var out model.Transaction
	path := fmt.Sprintf("/transactions/%d", id)
	if err := c.do(ctx, "GET", path, nil, &out, txnSchema, "transaction", "Failed to fetch transaction"); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// CreateTransaction adds a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, payload TransactionPayload) (model.Transaction, error) {
	var out model.Transaction
	if err := c.do(ctx, "POST", "/transactions/", payload, &out, txnSchema, "transaction", "Failed to add transaction"); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// UpdateTransaction patches an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, payload TransactionPayload) (model.Transaction, error) {
	var out model.Transaction
	path := fmt.Sprintf("/transactions/%d", id)
	if err := c.do(ctx, "PATCH", path, payload, &out, txnSchema, "transaction", "Failed to update transaction"); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) (string, error) {
	path := fmt.Sprintf("/transactions/%d", id)
	if err := c.do(ctx, "DELETE", path, nil, nil, nil, "transaction", "Failed to delete transaction"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Transaction %d successfully deleted", id), nil
}

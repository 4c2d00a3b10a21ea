package api

import (
	"context"
	"fmt"
	"net/url"

	"duit/internal/model"
)

// AccountPayload is the create/update body for an account.
type AccountPayload struct {
	Type    model.AccountType `json:"type"`
	Name    string            `json:"name"`
	Icon    string            `json:"icon"`
	Balance int64             `json:"balance"`
}

// normalize applies the defaults the backend expects for omitted fields.
func (p AccountPayload) normalize() AccountPayload {
	if p.Type == "" {
		p.Type = model.AccountTypeBank
	}
	return p
}

// ListAccounts fetches the full account collection.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var out []model.Account
	if err := c.do(ctx, "GET", "/accounts/", nil, &out, accountListSchema, "account list", "Failed to fetch accounts"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAccountByName looks up a single account. The backend keys this
// endpoint by name, not id.
func (c *Client) GetAccountByName(ctx context.Context, name string) (model.Account, error) {
	var out model.Account
	path := "/accounts/" + url.PathEscape(name)
	if err := c.do(ctx, "GET", path, nil, &out, accountSchema, "account", "Account not found"); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

// CreateAccount adds a new account.
func (c *Client) CreateAccount(ctx context.Context, payload AccountPayload) (model.Account, error) {
	var out model.Account
	if err := c.do(ctx, "POST", "/accounts/", payload.normalize(), &out, accountSchema, "account", "Failed to add account"); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

// UpdateAccount patches an existing account.
func (c *Client) UpdateAccount(ctx context.Context, id int64, payload AccountPayload) (model.Account, error) {
	var out model.Account
	path := fmt.Sprintf("/accounts/%d", id)
	if err := c.do(ctx, "PATCH", path, payload.normalize(), &out, accountSchema, "account", "Failed to edit account"); err != nil {
		return model.Account{}, err
	}
	return out, nil
}

// DeleteAccount removes an account. A thrown error is the sole failure
// signal; on success a confirmation string is returned.
func (c *Client) DeleteAccount(ctx context.Context, id int64) (string, error) {
	path := fmt.Sprintf("/accounts/%d", id)
	if err := c.do(ctx, "DELETE", path, nil, nil, nil, "account", "Failed to delete account"); err != nil {
		return "", err
	}
	return fmt.Sprintf("Account %d successfully deleted", id), nil
}

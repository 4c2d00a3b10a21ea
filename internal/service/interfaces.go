// Package service defines the interface between the views and the API
// client, so the TUI can be exercised against a fake backend in tests.
package service

import (
	"context"

	"duit/internal/api"
	"duit/internal/model"
)

// API is the full REST surface the views consume. *api.Client implements
// it.
type API interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetAccountByName(ctx context.Context, name string) (model.Account, error)
	CreateAccount(ctx context.Context, payload api.AccountPayload) (model.Account, error)
	UpdateAccount(ctx context.Context, id int64, payload api.AccountPayload) (model.Account, error)
	DeleteAccount(ctx context.Context, id int64) (string, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, payload api.CategoryPayload) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, payload api.CategoryPayload) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) (string, error)

	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (model.Transaction, error)
	CreateTransaction(ctx context.Context, payload api.TransactionPayload) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, payload api.TransactionPayload) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) (string, error)
}

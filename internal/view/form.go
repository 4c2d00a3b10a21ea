package view

import (
	"errors"
	"strconv"
	"strings"

	"duit/internal/api"
	"duit/internal/model"
)

// Validation messages surfaced inline in the form. Server-side failures
// reuse the same display slot with the error text verbatim.
var (
	errAmountInvalid  = errors.New("Enter a valid amount greater than 0.")
	errDateRequired   = errors.New("Date is required.")
	errNameRequired   = errors.New("Category name cannot be empty.")
	errAccountName    = errors.New("Account name cannot be empty.")
	errBalanceInvalid = errors.New("Enter a valid balance.")
)

// TransactionForm holds the editable fields of the transaction modal.
// Amount and the references stay as entered; Validate parses them and no
// network call happens until it passes.
type TransactionForm struct {
	CategoryID *int64
	AccountID  *int64
	Type       model.TransactionType
	Amount     string
	Date       string
	Note       string
}

// NewTransactionForm returns the empty form: expense, dated today.
func NewTransactionForm(today string) TransactionForm {
	return TransactionForm{Type: model.TypeExpense, Date: today}
}

// EditTransactionForm pre-fills the form from an existing transaction.
func EditTransactionForm(t model.Transaction) TransactionForm {
	return TransactionForm{
		Type:       t.Type,
		Amount:     strconv.FormatInt(t.AmountCents, 10),
		Date:       t.Date,
		Note:       t.NoteText(),
		CategoryID: t.CategoryID,
		AccountID:  t.AccountID,
	}
}

// Validate checks the form and builds the request payload. A returned
// error is the inline message; the API is not called.
func (f TransactionForm) Validate() (api.TransactionPayload, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(f.Amount), 10, 64)
	if err != nil || amount <= 0 {
		return api.TransactionPayload{}, errAmountInvalid
	}
	if strings.TrimSpace(f.Date) == "" {
		return api.TransactionPayload{}, errDateRequired
	}

	payload := api.TransactionPayload{
		Type:        f.Type,
		AmountCents: amount,
		Date:        f.Date,
		CategoryID:  f.CategoryID,
		AccountID:   f.AccountID,
	}
	if note := strings.TrimSpace(f.Note); note != "" {
		payload.Note = &note
	}
	return payload, nil
}

// CategoryForm holds the editable fields of the category modal.
type CategoryForm struct {
	Name  string
	Type  model.TransactionType
	Icon  string
	Color string
}

// NewCategoryForm returns the empty form with the default palette color.
func NewCategoryForm() CategoryForm {
	return CategoryForm{Type: model.TypeExpense, Color: model.DefaultColor}
}

// EditCategoryForm pre-fills the form from an existing category.
func EditCategoryForm(c model.Category) CategoryForm {
	return CategoryForm{
		Name:  c.Name,
		Type:  c.EffectiveType(),
		Icon:  c.Icon,
		Color: c.EffectiveColor(),
	}
}

// Validate checks the form and builds the request payload.
func (f CategoryForm) Validate() (api.CategoryPayload, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return api.CategoryPayload{}, errNameRequired
	}
	return api.CategoryPayload{
		Name:  name,
		Type:  f.Type,
		Icon:  f.Icon,
		Color: f.Color,
	}, nil
}

// AccountForm holds the editable fields of the account modal.
type AccountForm struct {
	Type    model.AccountType
	Name    string
	Balance string
}

// NewAccountForm returns the empty form: a bank account.
func NewAccountForm() AccountForm {
	return AccountForm{Type: model.AccountTypeBank}
}

// EditAccountForm pre-fills the form from an existing account.
func EditAccountForm(a model.Account) AccountForm {
	return AccountForm{
		Type:    a.Type,
		Name:    a.Name,
		Balance: strconv.FormatInt(a.Balance, 10),
	}
}

// Validate checks the form and builds the request payload. An empty
// balance defaults to zero; negative balances are allowed.
func (f AccountForm) Validate() (api.AccountPayload, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return api.AccountPayload{}, errAccountName
	}

	var balance int64
	if raw := strings.TrimSpace(f.Balance); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return api.AccountPayload{}, errBalanceInvalid
		}
		balance = parsed
	}

	return api.AccountPayload{
		Type:    f.Type,
		Name:    name,
		Balance: balance,
	}, nil
}

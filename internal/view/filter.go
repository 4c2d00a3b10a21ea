// Package view holds the pure presentation state for the list views:
// search filtering, column sorting, pagination, form validation, and the
// modal state machine. Nothing here touches the network or the terminal,
// which keeps all of it table-testable.
package view

import (
	"strings"

	"duit/internal/model"
)

// FilterTransactions returns the transactions matching a free-text query.
// The match is a case-insensitive substring check against the note, the
// resolved category name, the resolved account name, the type, and the
// raw date string. An empty query returns the input unchanged.
func FilterTransactions(transactions []model.Transaction, ix model.NameIndex, query string) []model.Transaction {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return transactions
	}

	var out []model.Transaction
	for _, t := range transactions {
		if matchesTransaction(t, ix, q) {
			out = append(out, t)
		}
	}
	return out
}

func matchesTransaction(t model.Transaction, ix model.NameIndex, q string) bool {
	if strings.Contains(strings.ToLower(t.NoteText()), q) {
		return true
	}
	if name, ok := ix.CategoryName(t.CategoryID); ok && strings.Contains(strings.ToLower(name), q) {
		return true
	}
	if name, ok := ix.AccountName(t.AccountID); ok && strings.Contains(strings.ToLower(name), q) {
		return true
	}
	if strings.Contains(string(t.Type), q) {
		return true
	}
	return strings.Contains(t.Date, q)
}

// FilterAccounts returns the accounts whose name or type matches the
// query, case-insensitively. An empty query returns the input unchanged.
func FilterAccounts(accounts []model.Account, query string) []model.Account {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return accounts
	}

	var out []model.Account
	for _, a := range accounts {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(string(a.Type), q) {
			out = append(out, a)
		}
	}
	return out
}

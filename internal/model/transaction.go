// Package model defines the entities served by the finance tracker API.
package model

import "strings"

// TransactionType indicates the cash-flow direction of a transaction.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded transaction.
//
// AmountCents is always positive; the cash-flow sign is carried by Type.
// CategoryID and AccountID are weak references: the entity they point at
// may have been deleted, in which case display falls back to a sentinel.
type Transaction struct {
	Note        *string         `json:"note"`
	CategoryID  *int64          `json:"category_id"`
	AccountID   *int64          `json:"account_id"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	ID          int64           `json:"id"`
	AmountCents int64           `json:"amount_cents"`
}

// InMonth reports whether the transaction falls in the given "YYYY-MM" month.
func (t Transaction) InMonth(monthKey string) bool {
	return strings.HasPrefix(t.Date, monthKey)
}

// NoteText returns the note, or empty string when unset.
func (t Transaction) NoteText() string {
	if t.Note == nil {
		return ""
	}
	return *t.Note
}

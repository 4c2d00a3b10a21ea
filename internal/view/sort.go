package view

import (
	"sort"

	"duit/internal/model"
)

// SortColumn identifies a sortable transaction column.
type SortColumn string

// Sortable columns.
const (
	SortByType   SortColumn = "type"
	SortByAmount SortColumn = "amount"
	SortByDate   SortColumn = "date"
	SortByID     SortColumn = "id"
)

// SortState tracks the active sort column and direction.
type SortState struct {
	Column SortColumn
	Desc   bool
}

// DefaultSort is the initial transaction ordering: date, newest first.
func DefaultSort() SortState {
	return SortState{Column: SortByDate, Desc: true}
}

// Toggle returns the state after activating a column: the active column
// flips direction, a new column starts descending.
func (s SortState) Toggle(col SortColumn) SortState {
	if s.Column == col {
		s.Desc = !s.Desc
		return s
	}
	return SortState{Column: col, Desc: true}
}

// SortTransactions returns a sorted copy. Amount and id compare
// numerically, date and type lexicographically; equal keys fall back to
// id in the current direction.
func SortTransactions(transactions []model.Transaction, state SortState) []model.Transaction {
	out := make([]model.Transaction, len(transactions))
	copy(out, transactions)

	less := func(a, b model.Transaction) bool {
		switch state.Column {
		case SortByAmount:
			if a.AmountCents != b.AmountCents {
				return a.AmountCents < b.AmountCents
			}
		case SortByDate:
			if a.Date != b.Date {
				return a.Date < b.Date
			}
		case SortByType:
			if a.Type != b.Type {
				return a.Type < b.Type
			}
		}
		return a.ID < b.ID
	}

	sort.SliceStable(out, func(i, j int) bool {
		if state.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Package report computes the dashboard aggregates from a flat list of
// transactions. Everything here is a pure function; the caller supplies
// the data and a selected month and gets display-ready values back.
package report

import (
	"math"
	"sort"

	"duit/internal/model"
)

// RecentLimit is the number of transactions shown in the recent list.
const RecentLimit = 7

// Colors for the income-vs-expense split.
const (
	incomeColor  = "#34d399"
	expenseColor = "#fb7185"
)

// Totals holds a month's income and expense sums.
type Totals struct {
	IncomeCents  int64
	ExpenseCents int64
	IncomeCount  int
	ExpenseCount int
}

// NetCents is income minus expense; negative means a deficit.
func (t Totals) NetCents() int64 {
	return t.IncomeCents - t.ExpenseCents
}

// TotalCents is the combined volume of the month.
func (t Totals) TotalCents() int64 {
	return t.IncomeCents + t.ExpenseCents
}

// Slice is one group of a breakdown.
type Slice struct {
	Name       string
	Color      string
	ValueCents int64
	Pct        int
}

// MonthTransactions returns the transactions falling in the given
// "YYYY-MM" month, preserving input order.
func MonthTransactions(transactions []model.Transaction, monthKey string) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.InMonth(monthKey) {
			out = append(out, t)
		}
	}
	return out
}

// MonthTotals sums the month's transactions partitioned by type.
func MonthTotals(monthTxs []model.Transaction) Totals {
	var totals Totals
	for _, t := range monthTxs {
		switch t.Type {
		case model.TypeIncome:
			totals.IncomeCents += t.AmountCents
			totals.IncomeCount++
		case model.TypeExpense:
			totals.ExpenseCents += t.AmountCents
			totals.ExpenseCount++
		}
	}
	return totals
}

// Split returns the two-slice income-vs-expense breakdown. Empty when the
// month has no volume, so callers render "no data" instead of dividing by
// zero.
func Split(totals Totals) []Slice {
	total := totals.TotalCents()
	if total == 0 {
		return nil
	}
	return []Slice{
		{Name: "Income", ValueCents: totals.IncomeCents, Color: incomeColor, Pct: pct(totals.IncomeCents, total)},
		{Name: "Expense", ValueCents: totals.ExpenseCents, Color: expenseColor, Pct: pct(totals.ExpenseCents, total)},
	}
}

// CategoryBreakdown groups the month's transactions of one type by
// category, sums each group, and ranks groups by sum descending. Unset or
// dangling category references land in the sentinel group. Ties keep the
// order grouping encountered them; colors cycle the chart palette by rank.
func CategoryBreakdown(monthTxs []model.Transaction, categories []model.Category, typ model.TransactionType) []Slice {
	ix := model.NewNameIndex(categories, nil)

	type group struct {
		name string
		sum  int64
	}

	// unset and dangling references share the sentinel bucket
	sums := make(map[int64]*group)
	var order []int64
	const unsetKey = int64(-1)

	for _, t := range monthTxs {
		if t.Type != typ {
			continue
		}
		key := unsetKey
		name, ok := ix.CategoryName(t.CategoryID)
		if ok {
			key = *t.CategoryID
		}
		g, seen := sums[key]
		if !seen {
			g = &group{name: name}
			sums[key] = g
			order = append(order, key)
		}
		g.sum += t.AmountCents
	}

	var total int64
	for _, key := range order {
		total += sums[key].sum
	}
	if total == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]].sum > sums[order[j]].sum
	})

	out := make([]Slice, 0, len(order))
	for rank, key := range order {
		g := sums[key]
		out = append(out, Slice{
			Name:       g.name,
			ValueCents: g.sum,
			Color:      model.ChartColor(rank),
			Pct:        pct(g.sum, total),
		})
	}
	return out
}

// Recent returns the month's transactions ordered by date descending then
// id descending, truncated to RecentLimit.
func Recent(monthTxs []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(monthTxs))
	copy(out, monthTxs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > RecentLimit {
		out = out[:RecentLimit]
	}
	return out
}

// pct rounds value/total to a whole percentage. Display-only; complements
// may not sum to exactly 100.
func pct(value, total int64) int {
	return int(math.Round(float64(value) / float64(total) * 100))
}

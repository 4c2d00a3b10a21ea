package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/model"
)

func TestSortStateToggle(t *testing.T) {
	tests := []struct {
		name  string
		state SortState
		col   SortColumn
		want  SortState
	}{
		{
			name:  "same column flips direction",
			state: SortState{Column: SortByDate, Desc: true},
			col:   SortByDate,
			want:  SortState{Column: SortByDate, Desc: false},
		},
		{
			name:  "same column flips back",
			state: SortState{Column: SortByDate, Desc: false},
			col:   SortByDate,
			want:  SortState{Column: SortByDate, Desc: true},
		},
		{
			name:  "new column starts descending",
			state: SortState{Column: SortByDate, Desc: false},
			col:   SortByAmount,
			want:  SortState{Column: SortByAmount, Desc: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Toggle(tt.col))
		})
	}
}

func TestDefaultSort(t *testing.T) {
	assert.Equal(t, SortState{Column: SortByDate, Desc: true}, DefaultSort())
}

func TestSortTransactions(t *testing.T) {
	transactions := []model.Transaction{
		{ID: 3, Type: model.TypeIncome, AmountCents: 500, Date: "2025-08-10"},
		{ID: 1, Type: model.TypeExpense, AmountCents: 200, Date: "2025-08-20"},
		{ID: 2, Type: model.TypeExpense, AmountCents: 800, Date: "2025-08-10"},
	}

	ids := func(txs []model.Transaction) []int64 {
		out := make([]int64, len(txs))
		for i, tx := range txs {
			out[i] = tx.ID
		}
		return out
	}

	tests := []struct {
		name  string
		state SortState
		want  []int64
	}{
		{
			name:  "date descending falls back to id",
			state: SortState{Column: SortByDate, Desc: true},
			want:  []int64{1, 3, 2},
		},
		{
			name:  "date ascending",
			state: SortState{Column: SortByDate, Desc: false},
			want:  []int64{2, 3, 1},
		},
		{
			name:  "amount descending",
			state: SortState{Column: SortByAmount, Desc: true},
			want:  []int64{2, 3, 1},
		},
		{
			name:  "amount ascending",
			state: SortState{Column: SortByAmount, Desc: false},
			want:  []int64{1, 3, 2},
		},
		{
			name:  "type ascending groups expenses first",
			state: SortState{Column: SortByType, Desc: false},
			want:  []int64{1, 2, 3},
		},
		{
			name:  "id descending",
			state: SortState{Column: SortByID, Desc: true},
			want:  []int64{3, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortTransactions(transactions, tt.state)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("does not mutate the input", func(t *testing.T) {
		_ = SortTransactions(transactions, SortState{Column: SortByAmount, Desc: true})
		require.Equal(t, int64(3), transactions[0].ID)
	})
}

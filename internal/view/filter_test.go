package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/model"
)

func ref(v int64) *int64 {
	return &v
}

func note(s string) *string {
	return &s
}

func testIndex() model.NameIndex {
	return model.NewNameIndex(
		[]model.Category{
			{ID: 1, Name: "Makan & Minum"},
			{ID: 2, Name: "Transport"},
		},
		[]model.Account{
			{ID: 1, Name: "BCA"},
			{ID: 2, Name: "GoPay"},
		},
	)
}

func TestFilterTransactions(t *testing.T) {
	transactions := []model.Transaction{
		{ID: 1, Type: model.TypeExpense, Date: "2025-08-01", Note: note("Kopi di Starbucks"), CategoryID: ref(1), AccountID: ref(2)},
		{ID: 2, Type: model.TypeExpense, Date: "2025-08-02", Note: note("Ojol ke kantor"), CategoryID: ref(2), AccountID: ref(1)},
		{ID: 3, Type: model.TypeIncome, Date: "2025-07-25", CategoryID: nil, AccountID: nil},
	}
	ix := testIndex()

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{
			name:    "empty query keeps everything",
			query:   "",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "blank query keeps everything",
			query:   "   ",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "note match is case-insensitive",
			query:   "STARBUCKS",
			wantIDs: []int64{1},
		},
		{
			name:    "category name matches",
			query:   "transport",
			wantIDs: []int64{2},
		},
		{
			name:    "account name matches",
			query:   "gopay",
			wantIDs: []int64{1},
		},
		{
			name:    "type matches",
			query:   "income",
			wantIDs: []int64{3},
		},
		{
			name:    "date substring matches",
			query:   "2025-08",
			wantIDs: []int64{1, 2},
		},
		{
			name:    "no match",
			query:   "netflix",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(transactions, ix, tt.query)

			var ids []int64
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterTransactionsUnresolvedNames(t *testing.T) {
	// sentinel labels are display-only and must not match the query
	transactions := []model.Transaction{
		{ID: 1, Type: model.TypeExpense, Date: "2025-08-01", CategoryID: ref(99), AccountID: ref(99)},
	}

	got := FilterTransactions(transactions, testIndex(), "uncategorized")
	assert.Empty(t, got)

	got = FilterTransactions(transactions, testIndex(), "no account")
	assert.Empty(t, got)
}

func TestFilterAccounts(t *testing.T) {
	accounts := []model.Account{
		{ID: 1, Name: "BCA", Type: model.AccountTypeBank},
		{ID: 2, Name: "Mandiri", Type: model.AccountTypeBank},
		{ID: 3, Name: "GoPay", Type: model.AccountTypeEwallet},
	}

	t.Run("name match", func(t *testing.T) {
		got := FilterAccounts(accounts, "man")
		require.Len(t, got, 1)
		assert.Equal(t, "Mandiri", got[0].Name)
	})

	t.Run("type match", func(t *testing.T) {
		got := FilterAccounts(accounts, "bank")
		assert.Len(t, got, 2)
	})

	t.Run("empty query keeps everything", func(t *testing.T) {
		assert.Len(t, FilterAccounts(accounts, ""), 3)
	})
}

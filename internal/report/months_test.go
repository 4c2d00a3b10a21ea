package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/model"
)

func TestMonthKey(t *testing.T) {
	at := time.Date(2025, time.August, 29, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-08", MonthKey(at))
}

func TestMonthOptions(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	got := MonthOptions(now)

	require.Len(t, got, 12)
	assert.Equal(t, "2025-03", got[0].Key)
	assert.Equal(t, "Mar 2025", got[0].Label)
	assert.Equal(t, "2025-02", got[1].Key)
	// the window crosses the year boundary
	assert.Equal(t, "2024-04", got[11].Key)
	assert.Equal(t, "Apr 2024", got[11].Label)
}

func TestTrend(t *testing.T) {
	now := time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		txn(1, model.TypeIncome, 5_000_000, "2025-08-25", nil),
		txn(2, model.TypeExpense, 300_000, "2025-08-02", nil),
		txn(3, model.TypeIncome, 4_000_000, "2025-03-25", nil),
		txn(4, model.TypeExpense, 100_000, "2025-04-10", nil),
		txn(5, model.TypeExpense, 999_000, "2025-02-01", nil), // before the window
	}

	got := Trend(now, transactions)

	require.Len(t, got, TrendMonths)

	// oldest first
	assert.Equal(t, "2025-03", got[0].Key)
	assert.Equal(t, "Mar", got[0].Label)
	assert.Equal(t, "2025-08", got[5].Key)

	assert.Equal(t, int64(4_000_000), got[0].IncomeCents)
	assert.Equal(t, int64(100_000), got[1].ExpenseCents)
	assert.Equal(t, int64(5_000_000), got[5].IncomeCents)
	assert.Equal(t, int64(300_000), got[5].ExpenseCents)

	// months without data stay zero
	assert.Zero(t, got[2].IncomeCents)
	assert.Zero(t, got[2].ExpenseCents)
}

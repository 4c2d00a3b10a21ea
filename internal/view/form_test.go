package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/model"
)

func TestNewTransactionForm(t *testing.T) {
	form := NewTransactionForm("2025-08-29")
	assert.Equal(t, model.TypeExpense, form.Type)
	assert.Equal(t, "2025-08-29", form.Date)
	assert.Empty(t, form.Amount)
}

func TestEditTransactionForm(t *testing.T) {
	tx := model.Transaction{
		ID:          7,
		Type:        model.TypeIncome,
		AmountCents: 5_000_000,
		Date:        "2025-08-25",
		Note:        note("Gaji bulanan"),
		CategoryID:  ref(3),
		AccountID:   ref(1),
	}

	form := EditTransactionForm(tx)

	assert.Equal(t, model.TypeIncome, form.Type)
	assert.Equal(t, "5000000", form.Amount)
	assert.Equal(t, "2025-08-25", form.Date)
	assert.Equal(t, "Gaji bulanan", form.Note)
	require.NotNil(t, form.CategoryID)
	assert.Equal(t, int64(3), *form.CategoryID)
}

func TestTransactionFormValidate(t *testing.T) {
	valid := TransactionForm{
		Type:   model.TypeExpense,
		Amount: "25000",
		Date:   "2025-08-29",
	}

	tests := []struct {
		name    string
		mutate  func(*TransactionForm)
		wantErr string
	}{
		{
			name:   "valid form",
			mutate: func(*TransactionForm) {},
		},
		{
			name:    "empty amount",
			mutate:  func(f *TransactionForm) { f.Amount = "" },
			wantErr: "Enter a valid amount greater than 0.",
		},
		{
			name:    "non-numeric amount",
			mutate:  func(f *TransactionForm) { f.Amount = "abc" },
			wantErr: "Enter a valid amount greater than 0.",
		},
		{
			name:    "zero amount",
			mutate:  func(f *TransactionForm) { f.Amount = "0" },
			wantErr: "Enter a valid amount greater than 0.",
		},
		{
			name:    "negative amount",
			mutate:  func(f *TransactionForm) { f.Amount = "-500" },
			wantErr: "Enter a valid amount greater than 0.",
		},
		{
			name:    "missing date",
			mutate:  func(f *TransactionForm) { f.Date = "  " },
			wantErr: "Date is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			payload, err := form.Validate()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(25000), payload.AmountCents)
			assert.Equal(t, model.TypeExpense, payload.Type)
		})
	}

	t.Run("note is trimmed and omitted when blank", func(t *testing.T) {
		form := valid
		form.Note = "   "
		payload, err := form.Validate()
		require.NoError(t, err)
		assert.Nil(t, payload.Note)

		form.Note = "  Kopi pagi  "
		payload, err = form.Validate()
		require.NoError(t, err)
		require.NotNil(t, payload.Note)
		assert.Equal(t, "Kopi pagi", *payload.Note)
	})

	t.Run("references pass through", func(t *testing.T) {
		form := valid
		form.CategoryID = ref(2)
		form.AccountID = nil

		payload, err := form.Validate()
		require.NoError(t, err)
		require.NotNil(t, payload.CategoryID)
		assert.Equal(t, int64(2), *payload.CategoryID)
		assert.Nil(t, payload.AccountID)
	})
}

func TestCategoryFormValidate(t *testing.T) {
	t.Run("empty name rejected", func(t *testing.T) {
		form := NewCategoryForm()
		form.Name = "   "
		_, err := form.Validate()
		require.EqualError(t, err, "Category name cannot be empty.")
	})

	t.Run("defaults fill type and color", func(t *testing.T) {
		form := NewCategoryForm()
		form.Name = "Belanja"
		form.Icon = "🛒"

		payload, err := form.Validate()
		require.NoError(t, err)
		assert.Equal(t, "Belanja", payload.Name)
		assert.Equal(t, model.TypeExpense, payload.Type)
		assert.Equal(t, model.DefaultColor, payload.Color)
		assert.Equal(t, "🛒", payload.Icon)
	})
}

func TestEditCategoryForm(t *testing.T) {
	form := EditCategoryForm(model.Category{ID: 4, Name: "Gaji", Type: model.TypeIncome, Icon: "💼", Color: "emerald"})
	assert.Equal(t, "Gaji", form.Name)
	assert.Equal(t, model.TypeIncome, form.Type)
	assert.Equal(t, "emerald", form.Color)

	// untyped legacy rows default on edit too
	form = EditCategoryForm(model.Category{ID: 5, Name: "Lama"})
	assert.Equal(t, model.TypeExpense, form.Type)
	assert.Equal(t, model.DefaultColor, form.Color)
}

func TestAccountFormValidate(t *testing.T) {
	tests := []struct {
		name        string
		form        AccountForm
		wantErr     string
		wantBalance int64
	}{
		{
			name:    "empty name rejected",
			form:    AccountForm{Type: model.AccountTypeBank, Name: " "},
			wantErr: "Account name cannot be empty.",
		},
		{
			name:    "garbage balance rejected",
			form:    AccountForm{Type: model.AccountTypeBank, Name: "BCA", Balance: "x"},
			wantErr: "Enter a valid balance.",
		},
		{
			name:        "empty balance defaults to zero",
			form:        AccountForm{Type: model.AccountTypeBank, Name: "BCA"},
			wantBalance: 0,
		},
		{
			name:        "negative balance allowed",
			form:        AccountForm{Type: model.AccountTypeEwallet, Name: "OVO", Balance: "-25000"},
			wantBalance: -25000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := tt.form.Validate()
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, payload.Balance)
		})
	}
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/api"
	"duit/internal/model"
	"duit/internal/tui/components"
	"duit/internal/tui/themes"
)

// fakeService serves canned data so the model can be driven without a
// backend.
type fakeService struct {
	accounts     []model.Account
	categories   []model.Category
	transactions []model.Transaction
	listErr      error
}

func (f *fakeService) ListAccounts(context.Context) ([]model.Account, error) {
	return f.accounts, f.listErr
}

func (f *fakeService) GetAccountByName(_ context.Context, name string) (model.Account, error) {
	for _, a := range f.accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return model.Account{}, errors.New("Account not found")
}

func (f *fakeService) CreateAccount(_ context.Context, p api.AccountPayload) (model.Account, error) {
	return model.Account{ID: 1, Name: p.Name, Type: p.Type, Balance: p.Balance}, nil
}

func (f *fakeService) UpdateAccount(_ context.Context, id int64, p api.AccountPayload) (model.Account, error) {
	return model.Account{ID: id, Name: p.Name, Type: p.Type, Balance: p.Balance}, nil
}

func (f *fakeService) DeleteAccount(context.Context, int64) (string, error) {
	return "Account 1 successfully deleted", nil
}

func (f *fakeService) ListCategories(context.Context) ([]model.Category, error) {
	return f.categories, f.listErr
}

func (f *fakeService) CreateCategory(_ context.Context, p api.CategoryPayload) (model.Category, error) {
	return model.Category{ID: 1, Name: p.Name, Type: p.Type}, nil
}

func (f *fakeService) UpdateCategory(_ context.Context, id int64, p api.CategoryPayload) (model.Category, error) {
	return model.Category{ID: id, Name: p.Name, Type: p.Type}, nil
}

func (f *fakeService) DeleteCategory(context.Context, int64) (string, error) {
	return "Category 1 successfully deleted", nil
}

func (f *fakeService) ListTransactions(context.Context) ([]model.Transaction, error) {
	return f.transactions, f.listErr
}

func (f *fakeService) GetTransaction(context.Context, int64) (model.Transaction, error) {
	return model.Transaction{}, errors.New("Failed to fetch transaction")
}

func (f *fakeService) CreateTransaction(_ context.Context, p api.TransactionPayload) (model.Transaction, error) {
	return model.Transaction{ID: 1, Type: p.Type, AmountCents: p.AmountCents, Date: p.Date}, nil
}

func (f *fakeService) UpdateTransaction(_ context.Context, id int64, p api.TransactionPayload) (model.Transaction, error) {
	return model.Transaction{ID: id, Type: p.Type, AmountCents: p.AmountCents, Date: p.Date}, nil
}

func (f *fakeService) DeleteTransaction(context.Context, int64) (string, error) {
	return "Transaction 1 successfully deleted", nil
}

func testModel(svc *fakeService) Model {
	cfg := defaultConfig()
	cfg.Service = svc
	return newModel(cfg)
}

func loadedModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	m := testModel(svc)
	msg := m.refresh()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func pressKey(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	panic("unknown key: " + s)
}

func sampleService() *fakeService {
	return &fakeService{
		accounts: []model.Account{
			{ID: 1, Name: "BCA", Type: model.AccountTypeBank, Balance: 1_000_000},
		},
		categories: []model.Category{
			{ID: 1, Name: "Makan & Minum", Type: model.TypeExpense, Color: "amber"},
		},
		transactions: []model.Transaction{
			{ID: 1, Type: model.TypeExpense, AmountCents: 45_000, Date: "2025-08-29", CategoryID: ptr(1), AccountID: ptr(1)},
		},
	}
}

func ptr(v int64) *int64 {
	return &v
}

func TestViewSwitching(t *testing.T) {
	m := loadedModel(t, sampleService())

	tests := []struct {
		press string
		want  View
	}{
		{press: "2", want: ViewTransactions},
		{press: "3", want: ViewCategories},
		{press: "4", want: ViewAccounts},
		{press: "1", want: ViewDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.press, func(t *testing.T) {
			next, _ := m.Update(pressKey(tt.press))
			assert.Equal(t, tt.want, next.(Model).view)
		})
	}

	t.Run("tab cycles and wraps", func(t *testing.T) {
		cur := m
		for _, want := range []View{ViewTransactions, ViewCategories, ViewAccounts, ViewDashboard} {
			next, _ := cur.Update(pressKey("tab"))
			cur = next.(Model)
			assert.Equal(t, want, cur.view)
		}
	})
}

func TestQuitKeys(t *testing.T) {
	m := loadedModel(t, sampleService())

	next, cmd := m.Update(pressKey("q"))
	assert.True(t, next.(Model).quitting)
	require.NotNil(t, cmd)

	next, cmd = m.Update(pressKey("ctrl+c"))
	assert.True(t, next.(Model).quitting)
	require.NotNil(t, cmd)
}

func TestThemeToggle(t *testing.T) {
	var savedName string
	cfg := defaultConfig()
	cfg.Service = sampleService()
	cfg.SaveTheme = func(name string) error {
		savedName = name
		return nil
	}
	m := newModel(cfg)

	next, cmd := m.Update(pressKey("t"))
	m = next.(Model)
	assert.Equal(t, themes.Light.Name, m.theme.Name)

	require.NotNil(t, cmd)
	msg := cmd()
	saved, ok := msg.(themeSavedMsg)
	require.True(t, ok)
	assert.NoError(t, saved.err)
	assert.Equal(t, "light", savedName)

	next, _ = m.Update(pressKey("t"))
	assert.Equal(t, themes.Dark.Name, next.(Model).theme.Name)
}

func TestThemeSaveFailureWarns(t *testing.T) {
	m := loadedModel(t, sampleService())

	next, _ := m.Update(themeSavedMsg{err: errors.New("read-only config")})
	m = next.(Model)

	assert.True(t, m.statusWarning)
	assert.Contains(t, m.status, "Theme not saved")
}

func TestRefreshFailureKeepsStaleData(t *testing.T) {
	svc := sampleService()
	m := loadedModel(t, svc)
	require.True(t, m.ready)

	svc.listErr = errors.New("Failed to fetch accounts")
	msg := m.refresh()()
	next, _ := m.Update(msg)
	m = next.(Model)

	assert.True(t, m.ready)
	assert.True(t, m.statusWarning)
	assert.Contains(t, m.status, "Refresh failed")
	// the transactions view still renders the data from the first load
	m.view = ViewTransactions
	assert.Contains(t, m.View(), "45.000")
}

func TestMutationSuccessSetsStatusAndRefreshes(t *testing.T) {
	m := loadedModel(t, sampleService())
	m.view = ViewTransactions

	next, cmd := m.Update(components.MutationDoneMsg{Message: "Transaction added"})
	m = next.(Model)

	assert.Equal(t, "Transaction added", m.status)
	assert.False(t, m.statusWarning)
	require.NotNil(t, cmd, "a successful mutation schedules a refresh")
}

func TestMutationFailureWithoutModalWarns(t *testing.T) {
	m := loadedModel(t, sampleService())
	m.view = ViewTransactions

	// the save failed after the user already escaped the form
	next, _ := m.Update(components.MutationDoneMsg{Err: errors.New("Failed to add transaction")})
	m = next.(Model)

	assert.True(t, m.statusWarning)
	assert.Equal(t, "Failed to add transaction", m.status)
}

func TestMutationFailureWithModalStaysInForm(t *testing.T) {
	m := loadedModel(t, sampleService())
	m.view = ViewTransactions

	next, _ := m.Update(pressKey("a"))
	m = next.(Model)
	require.True(t, m.modalOpen())

	next, _ = m.Update(components.MutationDoneMsg{Err: errors.New("Failed to add transaction")})
	m = next.(Model)

	assert.Empty(t, m.status, "the form shows the error, not the status line")
	assert.True(t, m.modalOpen())
}

func TestStatusExpiry(t *testing.T) {
	m := loadedModel(t, sampleService())
	_ = m.setStatus("Refreshing…", false)

	// a stale tick from an earlier status must not clear the newer one
	next, _ := m.Update(clearStatusMsg{})
	assert.Equal(t, "Refreshing…", next.(Model).status)

	next, _ = m.Update(clearStatusMsg{at: m.statusAt})
	assert.Empty(t, next.(Model).status)
}

func TestLoadingView(t *testing.T) {
	m := testModel(sampleService())

	out := m.View()
	assert.Contains(t, out, "Loading your finances")

	m = loadedModel(t, sampleService())
	out = m.View()
	assert.NotContains(t, out, "Loading your finances")
	assert.Contains(t, out, "Dashboard")
}

func TestHelpOverlay(t *testing.T) {
	m := loadedModel(t, sampleService())

	next, _ := m.Update(pressKey("?"))
	m = next.(Model)
	assert.True(t, m.showHelp)
	assert.True(t, strings.Contains(m.View(), "press any key to close"))

	next, _ = m.Update(pressKey("x"))
	assert.False(t, next.(Model).showHelp)
}

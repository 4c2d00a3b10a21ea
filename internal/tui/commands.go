package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshTimeout = 30 * time.Second
	statusLifetime = 5 * time.Second
)

// refresh loads all three datasets from the API in one command.
func (m Model) refresh() tea.Cmd {
	svc := m.config.Service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		accounts, err := svc.ListAccounts(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		categories, err := svc.ListCategories(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		transactions, err := svc.ListTransactions(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		return dataLoadedMsg{
			accounts:     accounts,
			categories:   categories,
			transactions: transactions,
		}
	}
}

// saveTheme persists the theme preference in the background.
func (m Model) saveTheme(name string) tea.Cmd {
	save := m.config.SaveTheme
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return themeSavedMsg{err: save(name)}
	}
}

// expireStatus clears the status line after its lifetime.
func expireStatus(at time.Time) tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{at: at}
	})
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var viewNames = [viewCount]string{"Dashboard", "Transactions", "Categories", "Accounts"}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.view {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewTransactions:
		content = m.transactions.View()
	case ViewCategories:
		content = m.categories.View()
	case ViewAccounts:
		content = m.accounts.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		content,
		m.renderStatusBar(),
	)
}

// renderLoading renders the startup screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("duit"),
		"",
		m.spinner.View()+" Loading your finances…",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderTabs renders the view switcher.
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range viewNames {
		label := " " + name + " "
		if View(i) == m.view {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, m.theme.Subtitle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusBar renders the bottom line: transient status on the left,
// the standing hint on the right.
func (m Model) renderStatusBar() string {
	hint := m.theme.Subtitle.Render("? help · t theme · r refresh · q quit")
	if m.status == "" {
		return hint
	}

	style := m.theme.StatusInfo
	if m.statusWarning {
		style = m.theme.StatusWarning
	}
	return style.Render(m.status) + "  " + hint
}

// renderHelp renders the full-screen key reference.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keyboard shortcuts"))
	b.WriteString("\n")

	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(m.theme.Bold.Render(padRight(h.Key, 10)))
			b.WriteString(" ")
			b.WriteString(m.theme.Normal.Render(h.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Subtitle.Render("press any key to close"))

	return m.theme.RoundedBox.Render(b.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

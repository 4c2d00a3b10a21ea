package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"duit/internal/model"
	"duit/internal/report"
	"duit/internal/tui/themes"
	"duit/internal/view"
)

// DashboardModel renders the monthly overview: stat cards, the cash-flow
// split, category breakdowns, recent transactions and the six-month trend.
type DashboardModel struct {
	theme        themes.Theme
	accounts     []model.Account
	categories   []model.Category
	transactions []model.Transaction
	months       []report.MonthOption
	monthIndex   int
	width        int
	height       int
}

// NewDashboardModel creates a dashboard anchored at the current month.
func NewDashboardModel(theme themes.Theme, now time.Time) DashboardModel {
	return DashboardModel{
		theme:  theme,
		months: report.MonthOptions(now),
	}
}

// SetTheme swaps the visual theme.
func (m *DashboardModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetData replaces the datasets the dashboard derives everything from.
func (m *DashboardModel) SetData(accounts []model.Account, categories []model.Category, transactions []model.Transaction) {
	m.accounts = accounts
	m.categories = categories
	m.transactions = transactions
}

// Resize adjusts the layout to the terminal size.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// MonthKey returns the currently selected month.
func (m DashboardModel) MonthKey() string {
	return m.months[m.monthIndex].Key
}

// Update handles month navigation.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "[", "left", "h":
			// months are ordered newest first, so older means a higher index
			if m.monthIndex < len(m.months)-1 {
				m.monthIndex++
			}
		case "]", "right", "l":
			if m.monthIndex > 0 {
				m.monthIndex--
			}
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	monthTxs := report.MonthTransactions(m.transactions, m.MonthKey())
	totals := report.MonthTotals(monthTxs)

	sections := []string{
		m.renderMonthPicker(),
		m.renderStatCards(totals),
	}

	if split := report.Split(totals); split != nil {
		sections = append(sections, m.renderSplit(split))
	}

	left := m.renderBreakdown("Expenses by category",
		report.CategoryBreakdown(monthTxs, m.categories, model.TypeExpense))
	right := m.renderBreakdown("Income by category",
		report.CategoryBreakdown(monthTxs, m.categories, model.TypeIncome))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	sections = append(sections,
		m.renderTrend(report.Trend(time.Now(), m.transactions)),
		m.renderRecent(report.Recent(monthTxs)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderMonthPicker() string {
	label := m.months[m.monthIndex].Label
	prev := m.theme.Subtitle.Render("[")
	next := m.theme.Subtitle.Render("]")
	return m.theme.Title.Render("Dashboard") + "  " +
		prev + " " + m.theme.Bold.Render(label) + " " + next
}

func (m DashboardModel) renderStatCards(totals report.Totals) string {
	var balance int64
	for _, a := range m.accounts {
		balance += a.Balance
	}

	card := m.theme.RoundedBox.Width(24)
	income := card.Render(
		m.theme.Subtitle.Render("Income") + "\n" +
			m.theme.Income.Render(view.FormatRupiah(totals.IncomeCents)) + "\n" +
			m.theme.Normal.Render(fmt.Sprintf("%d transactions", totals.IncomeCount)))
	expense := card.Render(
		m.theme.Subtitle.Render("Expenses") + "\n" +
			m.theme.Expense.Render(view.FormatRupiah(totals.ExpenseCents)) + "\n" +
			m.theme.Normal.Render(fmt.Sprintf("%d transactions", totals.ExpenseCount)))

	net := totals.NetCents()
	netStyle := m.theme.Income
	if net < 0 {
		netStyle = m.theme.Expense
	}
	netCard := card.Render(
		m.theme.Subtitle.Render("Net") + "\n" +
			netStyle.Render(view.FormatRupiah(net)) + "\n" +
			m.theme.Normal.Render(fmt.Sprintf("%d total", totals.IncomeCount+totals.ExpenseCount)))
	balanceCard := card.Render(
		m.theme.Subtitle.Render("All accounts") + "\n" +
			m.theme.Bold.Render(view.FormatRupiah(balance)) + "\n" +
			m.theme.Normal.Render(fmt.Sprintf("%d accounts", len(m.accounts))))

	return lipgloss.JoinHorizontal(lipgloss.Top, income, expense, netCard, balanceCard)
}

func (m DashboardModel) renderSplit(split []report.Slice) string {
	lines := []string{m.theme.Subtitle.Render("Cash flow")}
	for _, s := range split {
		bar := percentBar(s.Pct, 30, s.Color)
		lines = append(lines, fmt.Sprintf("%-8s %s %3d%%  %s",
			s.Name, bar, s.Pct, view.FormatRupiah(s.ValueCents)))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderBreakdown(title string, slices []report.Slice) string {
	lines := []string{m.theme.Subtitle.Render(title)}
	if slices == nil {
		lines = append(lines, m.theme.Italic.Render("No data for this month"))
	}
	for _, s := range slices {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("██")
		name := s.Name
		if len(name) > 18 {
			name = name[:17] + "…"
		}
		lines = append(lines, fmt.Sprintf("%s %-18s %3d%% %14s",
			swatch, name, s.Pct, view.FormatRupiah(s.ValueCents)))
	}
	return lipgloss.NewStyle().Width(m.width/2 - 2).Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderTrend(points []report.TrendPoint) string {
	var max int64 = 1
	for _, p := range points {
		if p.IncomeCents > max {
			max = p.IncomeCents
		}
		if p.ExpenseCents > max {
			max = p.ExpenseCents
		}
	}

	barWidth := 24
	lines := []string{m.theme.Subtitle.Render("Last 6 months")}
	for _, p := range points {
		in := scaledBar(p.IncomeCents, max, barWidth)
		out := scaledBar(p.ExpenseCents, max, barWidth)
		lines = append(lines,
			fmt.Sprintf("%-4s %s %s", p.Label, m.theme.Income.Render(in), view.FormatRupiah(p.IncomeCents)),
			fmt.Sprintf("     %s %s", m.theme.Expense.Render(out), view.FormatRupiah(p.ExpenseCents)),
		)
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderRecent(recent []model.Transaction) string {
	ix := model.NewNameIndex(m.categories, m.accounts)

	lines := []string{m.theme.Subtitle.Render("Recent transactions")}
	if len(recent) == 0 {
		lines = append(lines, m.theme.Italic.Render("Nothing this month"))
	}
	for _, t := range recent {
		catName, _ := ix.CategoryName(t.CategoryID)
		amount := view.FormatFlow(t.Type, t.AmountCents)
		style := m.theme.Expense
		if t.Type == model.TypeIncome {
			style = m.theme.Income
		}
		note := t.NoteText()
		if note == "" {
			note = catName
		}
		lines = append(lines, fmt.Sprintf("%s  %-24s %-16s %s",
			t.Date, truncate(note, 24), truncate(catName, 16), style.Render(amount)))
	}
	return strings.Join(lines, "\n")
}

// percentBar renders a fixed-width bar filled proportionally to pct.
func percentBar(pct, width int, color string) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	fg := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return fg.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// scaledBar renders a bar proportional to value/max, at least one cell
// wide for non-zero values.
func scaledBar(value, max int64, width int) string {
	n := int(value * int64(width) / max)
	if n == 0 && value > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

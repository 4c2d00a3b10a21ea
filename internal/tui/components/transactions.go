package components

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"duit/internal/model"
	"duit/internal/service"
	"duit/internal/tui/themes"
	"duit/internal/view"
)

const mutationTimeout = 30 * time.Second

// option is one entry of a cycling picker.
type option struct {
	id    *int64
	label string
}

// Fields of the transaction form, in focus order.
const (
	txnFieldType = iota
	txnFieldAmount
	txnFieldDate
	txnFieldNote
	txnFieldCategory
	txnFieldAccount
	txnFieldCount
)

// TransactionsModel is the transactions list view with search, sorting,
// pagination and the add/edit/delete modals.
type TransactionsModel struct {
	svc   service.API
	theme themes.Theme

	accounts     []model.Account
	categories   []model.Category
	transactions []model.Transaction
	index        model.NameIndex

	table     table.Model
	search    textinput.Model
	searching bool
	sort      view.SortState
	page      int

	modal      view.Modal
	form       view.TransactionForm
	amount     textinput.Model
	date       textinput.Model
	note       textinput.Model
	catOptions []option
	catIndex   int
	accOptions []option
	accIndex   int
	focus      int

	width  int
	height int
}

// NewTransactionsModel creates the transactions view.
func NewTransactionsModel(svc service.API, theme themes.Theme) TransactionsModel {
	search := textinput.New()
	search.Placeholder = "Search note, category, account, type or date"
	search.CharLimit = 64

	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Type", Width: 8},
		{Title: "Note", Width: 28},
		{Title: "Category", Width: 16},
		{Title: "Account", Width: 14},
		{Title: "Amount", Width: 16},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	m := TransactionsModel{
		svc:    svc,
		theme:  theme,
		table:  t,
		search: search,
		sort:   view.DefaultSort(),
		amount: textinput.New(),
		date:   textinput.New(),
		note:   textinput.New(),
	}
	m.amount.Placeholder = "Amount"
	m.amount.CharLimit = 15
	m.date.Placeholder = "YYYY-MM-DD"
	m.date.CharLimit = 10
	m.note.Placeholder = "Note (optional)"
	m.note.CharLimit = 120
	m.applyTableStyles()
	return m
}

// SetTheme swaps the visual theme.
func (m *TransactionsModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	m.applyTableStyles()
}

func (m *TransactionsModel) applyTableStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.Selected
	m.table.SetStyles(s)
}

// SetData replaces the datasets behind the list.
func (m *TransactionsModel) SetData(accounts []model.Account, categories []model.Category, transactions []model.Transaction) {
	m.accounts = accounts
	m.categories = categories
	m.transactions = transactions
	m.index = model.NewNameIndex(categories, accounts)
	m.reload()
}

// Resize adjusts the layout to the terminal size.
func (m *TransactionsModel) Resize(width, height int) {
	m.width = width
	m.height = height
	h := height - 8
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

// Capturing reports whether the view is consuming raw text input.
func (m TransactionsModel) Capturing() bool {
	return m.searching || m.modal.State != view.ModalClosed
}

// ModalOpen reports whether a form or delete confirmation is on screen.
func (m TransactionsModel) ModalOpen() bool {
	return m.modal.State != view.ModalClosed
}

// visible applies the search filter and active sort.
func (m TransactionsModel) visible() []model.Transaction {
	filtered := view.FilterTransactions(m.transactions, m.index, m.search.Value())
	return view.SortTransactions(filtered, m.sort)
}

// reload recomputes the table rows for the current page.
func (m *TransactionsModel) reload() {
	rows := m.visible()
	m.page = view.ClampPage(m.page, len(rows))
	start, end := view.PageBounds(m.page, len(rows))

	tableRows := make([]table.Row, 0, end-start)
	for _, t := range rows[start:end] {
		catName, _ := m.index.CategoryName(t.CategoryID)
		accName, _ := m.index.AccountName(t.AccountID)
		tableRows = append(tableRows, table.Row{
			t.Date,
			string(t.Type),
			t.NoteText(),
			catName,
			accName,
			view.FormatFlow(t.Type, t.AmountCents),
		})
	}
	m.table.SetRows(tableRows)
}

// selected returns the transaction under the cursor.
func (m TransactionsModel) selected() (model.Transaction, bool) {
	rows := m.visible()
	start, _ := view.PageBounds(m.page, len(rows))
	i := start + m.table.Cursor()
	if i < 0 || i >= len(rows) {
		return model.Transaction{}, false
	}
	return rows[i], true
}

// Update handles list keys, search input and modal interaction.
func (m TransactionsModel) Update(msg tea.Msg) (TransactionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case MutationDoneMsg:
		if m.modal.State == view.ModalClosed {
			return m, nil
		}
		if msg.Err != nil {
			m.modal.Fail(msg.Err.Error())
			return m, nil
		}
		m.modal.Close()
		return m, nil

	case tea.KeyMsg:
		if m.modal.State != view.ModalClosed {
			return m.updateModal(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m TransactionsModel) updateSearch(msg tea.KeyMsg) (TransactionsModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.page = 1
	m.reload()
	return m, cmd
}

func (m TransactionsModel) updateList(msg tea.KeyMsg) (TransactionsModel, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "s":
		m.sort = m.sort.Toggle(nextSortColumn(m.sort.Column))
		m.page = 1
		m.reload()
		return m, nil
	case "S":
		m.sort = m.sort.Toggle(m.sort.Column)
		m.page = 1
		m.reload()
		return m, nil

	case "n", "right":
		m.page = view.ClampPage(m.page+1, len(m.visible()))
		m.reload()
		return m, nil
	case "p", "left":
		m.page = view.ClampPage(m.page-1, len(m.visible()))
		m.reload()
		return m, nil

	case "a":
		m.openForm(view.NewTransactionForm(time.Now().Format("2006-01-02")), 0)
		return m, textinput.Blink
	case "e":
		if t, ok := m.selected(); ok {
			m.openForm(view.EditTransactionForm(t), t.ID)
		}
		return m, textinput.Blink
	case "d":
		if t, ok := m.selected(); ok {
			m.modal.OpenDelete(t.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openForm opens the modal, seeding the inputs and pickers from the form.
func (m *TransactionsModel) openForm(form view.TransactionForm, editID int64) {
	m.form = form
	if editID > 0 {
		m.modal.OpenEdit(editID)
	} else {
		m.modal.OpenCreate()
	}

	m.amount.SetValue(form.Amount)
	m.date.SetValue(form.Date)
	m.note.SetValue(form.Note)
	m.rebuildPickers()
	m.focus = txnFieldType
	m.focusField()
}

// rebuildPickers recomputes the category and account choices. Categories
// are limited to the form's transaction type.
func (m *TransactionsModel) rebuildPickers() {
	m.catOptions = []option{{id: nil, label: model.UncategorizedLabel}}
	m.catIndex = 0
	for _, c := range m.categories {
		if c.EffectiveType() != m.form.Type {
			continue
		}
		id := c.ID
		m.catOptions = append(m.catOptions, option{id: &id, label: c.Name})
		if m.form.CategoryID != nil && *m.form.CategoryID == c.ID {
			m.catIndex = len(m.catOptions) - 1
		}
	}

	m.accOptions = []option{{id: nil, label: model.NoAccountLabel}}
	m.accIndex = 0
	for _, a := range m.accounts {
		id := a.ID
		m.accOptions = append(m.accOptions, option{id: &id, label: a.Name})
		if m.form.AccountID != nil && *m.form.AccountID == a.ID {
			m.accIndex = len(m.accOptions) - 1
		}
	}
}

func (m *TransactionsModel) focusField() {
	m.amount.Blur()
	m.date.Blur()
	m.note.Blur()
	switch m.focus {
	case txnFieldAmount:
		m.amount.Focus()
	case txnFieldDate:
		m.date.Focus()
	case txnFieldNote:
		m.note.Focus()
	}
}

func (m TransactionsModel) updateModal(msg tea.KeyMsg) (TransactionsModel, tea.Cmd) {
	if m.modal.State == view.ModalDeleteConfirm {
		switch msg.String() {
		case "enter", "y":
			id := m.modal.DeleteID
			m.modal.BeginSave()
			return m, m.deleteCmd(id)
		case "esc", "n":
			m.modal.Close()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.modal.Close()
		return m, nil

	case "tab", "down":
		m.focus = (m.focus + 1) % txnFieldCount
		m.focusField()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.focus = (m.focus + txnFieldCount - 1) % txnFieldCount
		m.focusField()
		return m, textinput.Blink

	case "enter":
		return m.submit()

	case "left", "right":
		m.cycle(msg.String() == "right")
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case txnFieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	case txnFieldDate:
		m.date, cmd = m.date.Update(msg)
	case txnFieldNote:
		m.note, cmd = m.note.Update(msg)
	}
	return m, cmd
}

// cycle advances the picker under focus.
func (m *TransactionsModel) cycle(forward bool) {
	step := func(i, n int) int {
		if n == 0 {
			return 0
		}
		if forward {
			return (i + 1) % n
		}
		return (i + n - 1) % n
	}

	switch m.focus {
	case txnFieldType:
		if m.form.Type == model.TypeExpense {
			m.form.Type = model.TypeIncome
		} else {
			m.form.Type = model.TypeExpense
		}
		// the category list depends on the type
		m.form.CategoryID = nil
		m.rebuildPickers()
	case txnFieldCategory:
		m.catIndex = step(m.catIndex, len(m.catOptions))
	case txnFieldAccount:
		m.accIndex = step(m.accIndex, len(m.accOptions))
	}
}

func (m TransactionsModel) submit() (TransactionsModel, tea.Cmd) {
	m.form.Amount = m.amount.Value()
	m.form.Date = m.date.Value()
	m.form.Note = m.note.Value()
	m.form.CategoryID = m.catOptions[m.catIndex].id
	m.form.AccountID = m.accOptions[m.accIndex].id

	payload, err := m.form.Validate()
	if err != nil {
		m.modal.Fail(err.Error())
		return m, nil
	}

	editID := m.modal.EditID
	m.modal.BeginSave()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		if editID > 0 {
			_, err := m.svc.UpdateTransaction(ctx, editID, payload)
			if err != nil {
				return MutationDoneMsg{Err: err}
			}
			return MutationDoneMsg{Message: "Transaction updated"}
		}
		_, err := m.svc.CreateTransaction(ctx, payload)
		if err != nil {
			return MutationDoneMsg{Err: err}
		}
		return MutationDoneMsg{Message: "Transaction added"}
	}
}

func (m TransactionsModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		msg, err := m.svc.DeleteTransaction(ctx, id)
		if err != nil {
			return MutationDoneMsg{Err: err}
		}
		return MutationDoneMsg{Message: msg}
	}
}

// View renders the list or the active modal.
func (m TransactionsModel) View() string {
	if m.modal.State != view.ModalClosed {
		return m.renderModal()
	}

	rows := m.visible()
	total := view.TotalPages(len(rows))

	header := m.theme.Title.Render("Transactions")
	searchLine := m.theme.Subtitle.Render("/ ") + m.search.View()

	sortLine := m.theme.Subtitle.Render(fmt.Sprintf(
		"sort: %s %s  (s column, S direction)", m.sort.Column, sortArrow(m.sort.Desc)))

	footer := m.renderRail(total) +
		m.theme.Subtitle.Render(fmt.Sprintf("  %d transactions", len(rows)))

	return lipgloss.JoinVertical(lipgloss.Left,
		header, searchLine, sortLine, m.table.View(), footer)
}

// renderRail draws the page rail: first, last, neighbors and ellipses.
func (m TransactionsModel) renderRail(total int) string {
	var b strings.Builder
	for _, cell := range view.Rail(m.page, total) {
		if cell == view.RailEllipsis {
			b.WriteString(m.theme.Subtitle.Render(" … "))
			continue
		}
		n, _ := strconv.Atoi(cell)
		label := " " + cell + " "
		if n == m.page {
			b.WriteString(m.theme.Selected.Render(label))
		} else {
			b.WriteString(m.theme.Normal.Render(label))
		}
	}
	return b.String()
}

func (m TransactionsModel) renderModal() string {
	if m.modal.State == view.ModalDeleteConfirm {
		return renderDeleteConfirm(m.theme, "Delete this transaction?", m.modal)
	}

	title := "Add transaction"
	if m.modal.IsEditing() {
		title = "Edit transaction"
	}

	lines := []string{
		m.theme.Title.Render(title),
		formField(m.theme, "Type", pickerLabel(string(m.form.Type)), m.focus == txnFieldType),
		formField(m.theme, "Amount", m.amount.View(), m.focus == txnFieldAmount),
		formField(m.theme, "Date", m.date.View(), m.focus == txnFieldDate),
		formField(m.theme, "Note", m.note.View(), m.focus == txnFieldNote),
		formField(m.theme, "Category", pickerLabel(m.catOptions[m.catIndex].label), m.focus == txnFieldCategory),
		formField(m.theme, "Account", pickerLabel(m.accOptions[m.accIndex].label), m.focus == txnFieldAccount),
	}
	lines = append(lines, modalFooter(m.theme, m.modal)...)

	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

// nextSortColumn cycles type, amount, date, id.
func nextSortColumn(c view.SortColumn) view.SortColumn {
	switch c {
	case view.SortByType:
		return view.SortByAmount
	case view.SortByAmount:
		return view.SortByDate
	case view.SortByDate:
		return view.SortByID
	default:
		return view.SortByType
	}
}

func sortArrow(desc bool) string {
	if desc {
		return "↓"
	}
	return "↑"
}

// Shared modal rendering helpers.

func formField(theme themes.Theme, label, value string, focused bool) string {
	l := theme.Subtitle.Render(fmt.Sprintf("%-9s", label))
	if focused {
		l = theme.StatusInfo.Render(fmt.Sprintf("%-9s", label))
	}
	return l + " " + value
}

func pickerLabel(label string) string {
	return "◀ " + label + " ▶"
}

func modalFooter(theme themes.Theme, modal view.Modal) []string {
	lines := []string{""}
	if modal.Err != "" {
		lines = append(lines, theme.StatusError.Render(modal.Err))
	}
	if modal.Saving {
		lines = append(lines, theme.Subtitle.Render("Saving…"))
	} else {
		lines = append(lines, theme.Subtitle.Render("enter save · esc cancel · tab next field"))
	}
	return lines
}

func renderDeleteConfirm(theme themes.Theme, prompt string, modal view.Modal) string {
	lines := []string{
		theme.Title.Render("Confirm delete"),
		theme.Normal.Render(prompt),
	}
	if modal.Err != "" {
		lines = append(lines, "", theme.StatusError.Render(modal.Err))
	}
	if modal.Saving {
		lines = append(lines, "", theme.Subtitle.Render("Deleting…"))
	} else {
		lines = append(lines, "", theme.Subtitle.Render("enter/y delete · esc/n cancel"))
	}
	return theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"duit/internal/model"
	"duit/internal/service"
	"duit/internal/tui/themes"
	"duit/internal/view"
)

// accountIcons are the choices offered by the icon picker.
var accountIcons = []string{"🏦", "💳", "📱", "💵", "💰"}

// Fields of the account form, in focus order.
const (
	accFieldName = iota
	accFieldType
	accFieldIcon
	accFieldBalance
	accFieldCount
)

// AccountsModel is the accounts view: balance cards with search and
// add/edit/delete modals.
type AccountsModel struct {
	svc   service.API
	theme themes.Theme

	accounts []model.Account
	cursor   int

	search    textinput.Model
	searching bool

	modal     view.Modal
	form      view.AccountForm
	name      textinput.Model
	balance   textinput.Model
	iconIndex int
	focus     int

	width  int
	height int
}

// NewAccountsModel creates the accounts view.
func NewAccountsModel(svc service.API, theme themes.Theme) AccountsModel {
	search := textinput.New()
	search.Placeholder = "Search name or type"
	search.CharLimit = 40

	name := textinput.New()
	name.Placeholder = "Account name"
	name.CharLimit = 40

	balance := textinput.New()
	balance.Placeholder = "Balance"
	balance.CharLimit = 15

	return AccountsModel{svc: svc, theme: theme, search: search, name: name, balance: balance}
}

// SetTheme swaps the visual theme.
func (m *AccountsModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetData replaces the account list.
func (m *AccountsModel) SetData(accounts []model.Account) {
	m.accounts = accounts
	m.clampCursor()
}

// Resize adjusts the layout to the terminal size.
func (m *AccountsModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether the view is consuming raw text input.
func (m AccountsModel) Capturing() bool {
	return m.searching || m.modal.State != view.ModalClosed
}

// ModalOpen reports whether a form or delete confirmation is on screen.
func (m AccountsModel) ModalOpen() bool {
	return m.modal.State != view.ModalClosed
}

func (m AccountsModel) visible() []model.Account {
	return view.FilterAccounts(m.accounts, m.search.Value())
}

func (m *AccountsModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m AccountsModel) selected() (model.Account, bool) {
	rows := m.visible()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return model.Account{}, false
	}
	return rows[m.cursor], true
}

// Update handles list keys, search input and modal interaction.
func (m AccountsModel) Update(msg tea.Msg) (AccountsModel, tea.Cmd) {
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
			switch msg.String() {
			case "enter", "esc":
				m.searching = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.clampCursor()
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "a":
			m.openForm(view.NewAccountForm(), 0, accountIcons[0])
			return m, textinput.Blink
		case "e":
			if a, ok := m.selected(); ok {
				m.openForm(view.EditAccountForm(a), a.ID, a.Icon)
			}
			return m, textinput.Blink
		case "d":
			if a, ok := m.selected(); ok {
				m.modal.OpenDelete(a.ID)
			}
		}
	}
	return m, nil
}

func (m *AccountsModel) openForm(form view.AccountForm, editID int64, icon string) {
	m.form = form
	if editID > 0 {
		m.modal.OpenEdit(editID)
	} else {
		m.modal.OpenCreate()
	}

	m.name.SetValue(form.Name)
	m.balance.SetValue(form.Balance)
	m.iconIndex = 0
	for i, candidate := range accountIcons {
		if candidate == icon {
			m.iconIndex = i
			break
		}
	}
	m.focus = accFieldName
	m.syncFocus()
}

func (m *AccountsModel) syncFocus() {
	m.name.Blur()
	m.balance.Blur()
	switch m.focus {
	case accFieldName:
		m.name.Focus()
	case accFieldBalance:
		m.balance.Focus()
	}
}

func (m AccountsModel) updateModal(msg tea.KeyMsg) (AccountsModel, tea.Cmd) {
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
		m.focus = (m.focus + 1) % accFieldCount
		m.syncFocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.focus = (m.focus + accFieldCount - 1) % accFieldCount
		m.syncFocus()
		return m, textinput.Blink

	case "enter":
		return m.submit()

	case "left", "right":
		m.cycle(msg.String() == "right")
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case accFieldName:
		m.name, cmd = m.name.Update(msg)
	case accFieldBalance:
		m.balance, cmd = m.balance.Update(msg)
	}
	return m, cmd
}

func (m *AccountsModel) cycle(forward bool) {
	switch m.focus {
	case accFieldType:
		if m.form.Type == model.AccountTypeBank {
			m.form.Type = model.AccountTypeEwallet
		} else {
			m.form.Type = model.AccountTypeBank
		}
	case accFieldIcon:
		if forward {
			m.iconIndex = (m.iconIndex + 1) % len(accountIcons)
		} else {
			m.iconIndex = (m.iconIndex + len(accountIcons) - 1) % len(accountIcons)
		}
	}
}

func (m AccountsModel) submit() (AccountsModel, tea.Cmd) {
	m.form.Name = m.name.Value()
	m.form.Balance = m.balance.Value()

	payload, err := m.form.Validate()
	if err != nil {
		m.modal.Fail(err.Error())
		return m, nil
	}
	payload.Icon = accountIcons[m.iconIndex]

	editID := m.modal.EditID
	m.modal.BeginSave()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		if editID > 0 {
			_, err := m.svc.UpdateAccount(ctx, editID, payload)
			if err != nil {
				return MutationDoneMsg{Err: err}
			}
			return MutationDoneMsg{Message: "Account updated"}
		}
		_, err := m.svc.CreateAccount(ctx, payload)
		if err != nil {
			return MutationDoneMsg{Err: err}
		}
		return MutationDoneMsg{Message: "Account added"}
	}
}

func (m AccountsModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		msg, err := m.svc.DeleteAccount(ctx, id)
		if err != nil {
			return MutationDoneMsg{Err: err}
		}
		return MutationDoneMsg{Message: msg}
	}
}

// View renders the account cards or the active modal.
func (m AccountsModel) View() string {
	if m.modal.State != view.ModalClosed {
		return m.renderModal()
	}

	rows := m.visible()

	var total int64
	for _, a := range m.accounts {
		total += a.Balance
	}

	header := m.theme.Title.Render("Accounts") + "  " +
		m.theme.Subtitle.Render(view.FormatRupiah(total)+" across "+fmt.Sprintf("%d accounts", len(m.accounts)))
	searchLine := m.theme.Subtitle.Render("/ ") + m.search.View()

	card := m.theme.RoundedBox.Width(32)
	var cards []string
	for i, a := range rows {
		body := m.theme.Bold.Render(a.Icon+" "+a.Name) + "\n" +
			m.theme.Subtitle.Render(string(a.Type)) + "\n" +
			m.theme.Normal.Render(view.FormatRupiah(a.Balance))
		c := card
		if i == m.cursor {
			c = c.BorderForeground(m.theme.Primary)
		}
		cards = append(cards, c.Render(body))
	}
	if len(rows) == 0 {
		cards = append(cards, m.theme.Italic.Render("No accounts match"))
	}

	footer := m.theme.Subtitle.Render("a add · e edit · d delete · / search")
	return lipgloss.JoinVertical(lipgloss.Left,
		header, searchLine, lipgloss.JoinVertical(lipgloss.Left, cards...), footer)
}

func (m AccountsModel) renderModal() string {
	if m.modal.State == view.ModalDeleteConfirm {
		return renderDeleteConfirm(m.theme,
			"Delete this account? Its transactions keep no account reference.", m.modal)
	}

	title := "Add account"
	if m.modal.IsEditing() {
		title = "Edit account"
	}

	lines := []string{
		m.theme.Title.Render(title),
		formField(m.theme, "Name", m.name.View(), m.focus == accFieldName),
		formField(m.theme, "Type", pickerLabel(string(m.form.Type)), m.focus == accFieldType),
		formField(m.theme, "Icon", pickerLabel(accountIcons[m.iconIndex]), m.focus == accFieldIcon),
		formField(m.theme, "Balance", m.balance.View(), m.focus == accFieldBalance),
	}
	lines = append(lines, modalFooter(m.theme, m.modal)...)

	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

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

// categoryIcons are the choices offered by the icon picker.
var categoryIcons = []string{
	"💼", "💻", "📈", "🎁", "🍜", "🚌", "🛍️", "📄", "🎬", "💊", "📚", "✈️", "❓",
}

// Fields of the category form, in focus order.
const (
	catFieldName = iota
	catFieldType
	catFieldIcon
	catFieldColor
	catFieldCount
)

// CategoriesModel is the categories view: income and expense sections
// with add/edit/delete modals.
type CategoriesModel struct {
	svc   service.API
	theme themes.Theme

	categories []model.Category
	cursor     int

	modal      view.Modal
	form       view.CategoryForm
	name       textinput.Model
	iconIndex  int
	colorIndex int
	focus      int

	width  int
	height int
}

// NewCategoriesModel creates the categories view.
func NewCategoriesModel(svc service.API, theme themes.Theme) CategoriesModel {
	name := textinput.New()
	name.Placeholder = "Category name"
	name.CharLimit = 40
	return CategoriesModel{svc: svc, theme: theme, name: name}
}

// SetTheme swaps the visual theme.
func (m *CategoriesModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// SetData replaces the category list, income section first.
func (m *CategoriesModel) SetData(categories []model.Category) {
	ordered := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.EffectiveType() == model.TypeIncome {
			ordered = append(ordered, c)
		}
	}
	for _, c := range categories {
		if c.EffectiveType() == model.TypeExpense {
			ordered = append(ordered, c)
		}
	}
	m.categories = ordered
	if m.cursor >= len(ordered) {
		m.cursor = len(ordered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Resize adjusts the layout to the terminal size.
func (m *CategoriesModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Capturing reports whether the view is consuming raw text input.
func (m CategoriesModel) Capturing() bool {
	return m.modal.State != view.ModalClosed
}

// ModalOpen reports whether a form or delete confirmation is on screen.
func (m CategoriesModel) ModalOpen() bool {
	return m.modal.State != view.ModalClosed
}

func (m CategoriesModel) selected() (model.Category, bool) {
	if m.cursor < 0 || m.cursor >= len(m.categories) {
		return model.Category{}, false
	}
	return m.categories[m.cursor], true
}

// Update handles list keys and modal interaction.
func (m CategoriesModel) Update(msg tea.Msg) (CategoriesModel, tea.Cmd) {
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
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.categories)-1 {
				m.cursor++
			}
		case "a":
			m.openForm(view.NewCategoryForm(), 0)
			return m, textinput.Blink
		case "e":
			if c, ok := m.selected(); ok {
				m.openForm(view.EditCategoryForm(c), c.ID)
			}
			return m, textinput.Blink
		case "d":
			if c, ok := m.selected(); ok {
				m.modal.OpenDelete(c.ID)
			}
		}
	}
	return m, nil
}

func (m *CategoriesModel) openForm(form view.CategoryForm, editID int64) {
	m.form = form
	if editID > 0 {
		m.modal.OpenEdit(editID)
	} else {
		m.modal.OpenCreate()
	}

	m.name.SetValue(form.Name)
	m.name.Focus()
	m.focus = catFieldName

	m.iconIndex = 0
	for i, icon := range categoryIcons {
		if icon == form.Icon {
			m.iconIndex = i
			break
		}
	}
	m.colorIndex = 0
	for i, key := range model.PaletteKeys {
		if key == form.Color {
			m.colorIndex = i
			break
		}
	}
}

func (m CategoriesModel) updateModal(msg tea.KeyMsg) (CategoriesModel, tea.Cmd) {
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
		m.focus = (m.focus + 1) % catFieldCount
		m.syncFocus()
		return m, textinput.Blink
	case "shift+tab", "up":
		m.focus = (m.focus + catFieldCount - 1) % catFieldCount
		m.syncFocus()
		return m, textinput.Blink

	case "enter":
		return m.submit()

	case "left", "right":
		m.cycle(msg.String() == "right")
		return m, nil
	}

	if m.focus == catFieldName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *CategoriesModel) syncFocus() {
	if m.focus == catFieldName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
}

func (m *CategoriesModel) cycle(forward bool) {
	step := func(i, n int) int {
		if forward {
			return (i + 1) % n
		}
		return (i + n - 1) % n
	}

	switch m.focus {
	case catFieldType:
		if m.form.Type == model.TypeExpense {
			m.form.Type = model.TypeIncome
		} else {
			m.form.Type = model.TypeExpense
		}
	case catFieldIcon:
		m.iconIndex = step(m.iconIndex, len(categoryIcons))
	case catFieldColor:
		m.colorIndex = step(m.colorIndex, len(model.PaletteKeys))
	}
}

func (m CategoriesModel) submit() (CategoriesModel, tea.Cmd) {
	m.form.Name = m.name.Value()
	m.form.Icon = categoryIcons[m.iconIndex]
	m.form.Color = model.PaletteKeys[m.colorIndex]

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
			_, err := m.svc.UpdateCategory(ctx, editID, payload)
			if err != nil {
				return MutationDoneMsg{Err: err}
			}
			return MutationDoneMsg{Message: "Category updated"}
		}
		_, err := m.svc.CreateCategory(ctx, payload)
		if err != nil {
			return MutationDoneMsg{Err: err}
		}
		return MutationDoneMsg{Message: "Category added"}
	}
}

func (m CategoriesModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutationTimeout)
		defer cancel()

		msg, err := m.svc.DeleteCategory(ctx, id)
		if err != nil {
			return MutationDoneMsg{Err: err}
		}
		return MutationDoneMsg{Message: msg}
	}
}

// View renders the two sections or the active modal.
func (m CategoriesModel) View() string {
	if m.modal.State != view.ModalClosed {
		return m.renderModal()
	}

	lines := []string{m.theme.Title.Render("Categories")}
	lastType := model.TransactionType("")
	for i, c := range m.categories {
		if t := c.EffectiveType(); t != lastType {
			header := "Expense"
			if t == model.TypeIncome {
				header = "Income"
			}
			lines = append(lines, m.theme.Subtitle.Render(header))
			lastType = t
		}

		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(model.PaletteHex(c.EffectiveColor()))).
			Render("██")
		row := fmt.Sprintf("%s %s %s", swatch, c.Icon, c.Name)
		if i == m.cursor {
			row = m.theme.Selected.Render(row)
		}
		lines = append(lines, row)
	}
	if len(m.categories) == 0 {
		lines = append(lines, m.theme.Italic.Render("No categories yet"))
	}

	lines = append(lines, "", m.theme.Subtitle.Render("a add · e edit · d delete"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m CategoriesModel) renderModal() string {
	if m.modal.State == view.ModalDeleteConfirm {
		return renderDeleteConfirm(m.theme,
			"Delete this category? Its transactions become uncategorized.", m.modal)
	}

	title := "Add category"
	if m.modal.IsEditing() {
		title = "Edit category"
	}

	colorKey := model.PaletteKeys[m.colorIndex]
	colorSwatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(model.PaletteHex(colorKey))).
		Render("██")

	lines := []string{
		m.theme.Title.Render(title),
		formField(m.theme, "Name", m.name.View(), m.focus == catFieldName),
		formField(m.theme, "Type", pickerLabel(string(m.form.Type)), m.focus == catFieldType),
		formField(m.theme, "Icon", pickerLabel(categoryIcons[m.iconIndex]), m.focus == catFieldIcon),
		formField(m.theme, "Color", pickerLabel(colorSwatch+" "+colorKey), m.focus == catFieldColor),
	}
	lines = append(lines, modalFooter(m.theme, m.modal)...)

	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

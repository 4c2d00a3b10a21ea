package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"duit/internal/tui/components"
	"duit/internal/tui/themes"
)

// View represents the current view mode.
type View int

// Views, in tab order.
const (
	ViewDashboard View = iota
	ViewTransactions
	ViewCategories
	ViewAccounts
	viewCount
)

// Model holds the main TUI state.
type Model struct {
	theme         themes.Theme
	config        Config
	keymap        KeyMap
	dashboard     components.DashboardModel
	transactions  components.TransactionsModel
	categories    components.CategoriesModel
	accounts      components.AccountsModel
	spinner       spinner.Model
	status        string
	statusAt      time.Time
	statusWarning bool
	width         int
	height        int
	view          View
	showHelp      bool
	ready         bool
	quitting      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.StatusInfo

	return Model{
		theme:        cfg.Theme,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		dashboard:    components.NewDashboardModel(cfg.Theme, time.Now()),
		transactions: components.NewTransactionsModel(cfg.Service, cfg.Theme),
		categories:   components.NewCategoriesModel(cfg.Service, cfg.Theme),
		accounts:     components.NewAccountsModel(cfg.Service, cfg.Theme),
		spinner:      sp,
		width:        cfg.Width,
		height:       cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		m.refresh(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if !m.activeCapturing() {
			if next, cmd, handled := m.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}
		return m.delegate(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case dataLoadedMsg:
		return m.handleDataLoaded(msg)

	case components.MutationDoneMsg:
		next, cmd := m.delegate(msg)
		m = next.(Model)
		if msg.Err != nil {
			// when no modal is left to display the error (the user
			// already escaped, or switched views), surface it here
			if !m.modalOpen() {
				return m, tea.Batch(cmd, m.setStatus(msg.Err.Error(), true))
			}
			return m, cmd
		}
		status := m.setStatus(msg.Message, false)
		return m, tea.Batch(cmd, status, m.refresh())

	case themeSavedMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Theme not saved: %v", msg.err), true)
		}
		return m, nil

	case clearStatusMsg:
		// only expire the status that scheduled this tick
		if msg.at.Equal(m.statusAt) {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ready {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.delegate(msg)
}

// activeCapturing reports whether the active view is consuming raw text
// input, which suspends the global shortcuts.
func (m Model) activeCapturing() bool {
	switch m.view {
	case ViewTransactions:
		return m.transactions.Capturing()
	case ViewCategories:
		return m.categories.Capturing()
	case ViewAccounts:
		return m.accounts.Capturing()
	}
	return false
}

// modalOpen reports whether the active view is showing a modal.
func (m Model) modalOpen() bool {
	switch m.view {
	case ViewTransactions:
		return m.transactions.ModalOpen()
	case ViewCategories:
		return m.categories.ModalOpen()
	case ViewAccounts:
		return m.accounts.ModalOpen()
	}
	return false
}

// handleGlobalKey handles keys that work in any view.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit, true

	case "1":
		m.view = ViewDashboard
		return m, nil, true
	case "2":
		m.view = ViewTransactions
		return m, nil, true
	case "3":
		m.view = ViewCategories
		return m, nil, true
	case "4":
		m.view = ViewAccounts
		return m, nil, true
	case "tab":
		m.view = (m.view + 1) % viewCount
		return m, nil, true

	case "r":
		return m, tea.Batch(m.setStatus("Refreshing…", false), m.refresh()), true

	case "t":
		m.theme = themes.Toggle(m.theme)
		m.applyTheme()
		return m, m.saveTheme(m.theme.Name), true

	case "?":
		m.showHelp = true
		return m, nil, true

	case "ctrl+l":
		return m, tea.ClearScreen, true
	}
	return m, nil, false
}

// delegate routes a message to the active view.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewTransactions:
		m.transactions, cmd = m.transactions.Update(msg)
	case ViewCategories:
		m.categories, cmd = m.categories.Update(msg)
	case ViewAccounts:
		m.accounts, cmd = m.accounts.Update(msg)
	}
	return m, cmd
}

// handleDataLoaded distributes a refresh, or surfaces its failure while
// keeping the data the views already have.
func (m Model) handleDataLoaded(msg dataLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.ready = true
		return m, m.setStatus(fmt.Sprintf("Refresh failed: %v", msg.err), true)
	}

	m.dashboard.SetData(msg.accounts, msg.categories, msg.transactions)
	m.transactions.SetData(msg.accounts, msg.categories, msg.transactions)
	m.categories.SetData(msg.categories)
	m.accounts.SetData(msg.accounts)
	m.ready = true
	return m, nil
}

// applyTheme pushes the current theme into every view.
func (m *Model) applyTheme() {
	m.dashboard.SetTheme(m.theme)
	m.transactions.SetTheme(m.theme)
	m.categories.SetTheme(m.theme)
	m.accounts.SetTheme(m.theme)
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	w := m.width - 2
	h := m.height - 4
	m.dashboard.Resize(w, h)
	m.transactions.Resize(w, h)
	m.categories.Resize(w, h)
	m.accounts.Resize(w, h)
}

// setStatus sets the status line and schedules its expiry.
func (m *Model) setStatus(text string, warning bool) tea.Cmd {
	m.status = text
	m.statusWarning = warning
	m.statusAt = time.Now()
	return expireStatus(m.statusAt)
}

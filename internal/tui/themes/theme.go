// Package themes defines the visual styles for the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Info          lipgloss.Color
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	Border        lipgloss.Color
	Muted         lipgloss.Color
}

// Dark is the default theme, matching the app's slate-and-amber look.
var Dark = Theme{
	Name: "dark",

	// Colors
	Primary:    lipgloss.Color("#f59e0b"),
	Secondary:  lipgloss.Color("#fbbf24"),
	Success:    lipgloss.Color("#34d399"),
	Warning:    lipgloss.Color("#fbbf24"),
	Error:      lipgloss.Color("#fb7185"),
	Info:       lipgloss.Color("#38bdf8"),
	Background: lipgloss.Color("#0f172a"),
	Foreground: lipgloss.Color("#f1f5f9"),
	Border:     lipgloss.Color("#334155"),
	Muted:      lipgloss.Color("#64748b"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f1f5f9")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f1f5f9")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f1f5f9")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#94a3b8")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#f59e0b")).
		Foreground(lipgloss.Color("#0f172a")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#334155")).
		Foreground(lipgloss.Color("#f1f5f9")),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(1, 2),

	// Amount styles
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d399")),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fb7185")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d399")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fbbf24")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fb7185")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#38bdf8")).
		Bold(true),
}

// Light mirrors Dark on a bright background.
var Light = Theme{
	Name: "light",

	// Colors
	Primary:    lipgloss.Color("#d97706"),
	Secondary:  lipgloss.Color("#b45309"),
	Success:    lipgloss.Color("#059669"),
	Warning:    lipgloss.Color("#d97706"),
	Error:      lipgloss.Color("#e11d48"),
	Info:       lipgloss.Color("#0284c7"),
	Background: lipgloss.Color("#f8fafc"),
	Foreground: lipgloss.Color("#0f172a"),
	Border:     lipgloss.Color("#cbd5e1"),
	Muted:      lipgloss.Color("#64748b"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0f172a")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#475569")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0f172a")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0f172a")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#475569")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#d97706")).
		Foreground(lipgloss.Color("#f8fafc")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#e2e8f0")).
		Foreground(lipgloss.Color("#0f172a")),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#cbd5e1")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#cbd5e1")).
		Padding(1, 2),

	// Amount styles
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#059669")),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e11d48")),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#059669")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d97706")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e11d48")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0284c7")).
		Bold(true),
}

// GetTheme returns a theme by name, defaulting to dark.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return Light
	default:
		return Dark
	}
}

// Toggle returns the other theme.
func Toggle(t Theme) Theme {
	if t.Name == "light" {
		return Dark
	}
	return Light
}

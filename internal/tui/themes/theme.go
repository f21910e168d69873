package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the dashboard.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Faint       lipgloss.Style
	Selected    lipgloss.Style
	StatusOK    lipgloss.Style
	StatusWarn  lipgloss.Style
	StatusError lipgloss.Style
	RiskLow     lipgloss.Style
	RiskMedium  lipgloss.Style
	RiskHigh    lipgloss.Style
	Box         lipgloss.Style
	Panel       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Error       lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#0ea5e9"),
	Muted:   lipgloss.Color("#737373"),
	Border:  lipgloss.Color("#404040"),
	Error:   lipgloss.Color("#ef4444"),
	Warning: lipgloss.Color("#f59e0b"),
	Success: lipgloss.Color("#10b981"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#0ea5e9")).
		Foreground(lipgloss.Color("#0a0a0a")).
		Bold(true),

	StatusOK: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	StatusWarn: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),

	RiskLow: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	RiskMedium: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	RiskHigh: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),

	Box: lipgloss.NewStyle().
		Padding(0, 1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#0a0a0a")).
		Background(lipgloss.Color("#0ea5e9")).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 2),
}
